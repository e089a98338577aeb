package config

import (
	"fmt"
	"net/netip"
	"strings"
)

var emailProviders = []string{"log", "resend", "ses"}

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.SessionSecret) < 32 {
		return fmt.Errorf("auth.session_secret must be at least 32 characters (got %d)", len(c.Auth.SessionSecret))
	}
	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("auth.session_ttl must be > 0 (got %s)", c.Auth.SessionTTL)
	}
	if c.Auth.LockoutAttempts <= 0 {
		return fmt.Errorf("auth.lockout_attempts must be > 0 (got %d)", c.Auth.LockoutAttempts)
	}

	if c.Stripe.CommissionMaturityDays < 0 {
		return fmt.Errorf("stripe.commission_maturity_days must be >= 0 (got %d)", c.Stripe.CommissionMaturityDays)
	}

	seen := make(map[string]bool, len(c.Stripe.Catalog))
	for i, item := range c.Stripe.Catalog {
		if item.ID == "" || item.PriceCents <= 0 {
			return fmt.Errorf("stripe.catalog[%d] needs an id and a positive price_cents", i)
		}
		if seen[item.ID] {
			return fmt.Errorf("stripe.catalog: duplicate id %q", item.ID)
		}
		seen[item.ID] = true
	}

	if err := c.Email.validate(); err != nil {
		return fmt.Errorf("email: %w", err)
	}

	if c.Narration.MaxVersion < 1 {
		return fmt.Errorf("narration.max_version must be >= 1 (got %d)", c.Narration.MaxVersion)
	}

	for _, p := range c.RateLimit.TrustedProxies {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		var err error
		if strings.Contains(p, "/") {
			_, err = netip.ParsePrefix(p)
		} else {
			_, err = netip.ParseAddr(p)
		}
		if err != nil {
			return fmt.Errorf("ratelimit.trusted_proxies: %q is not an address or CIDR", p)
		}
	}

	return nil
}

func (e *EmailConfig) validate() error {
	provider := strings.ToLower(strings.TrimSpace(e.Provider))
	known := false
	for _, p := range emailProviders {
		if p == provider {
			known = true
		}
	}
	if !known {
		return fmt.Errorf("unknown provider %q (want one of %s)", e.Provider, strings.Join(emailProviders, ", "))
	}
	e.Provider = provider

	if provider == "resend" && e.APIKey == "" {
		return fmt.Errorf("api_key is required for the resend provider")
	}
	return nil
}

// NarrationEnabled reports whether speech synthesis and storage are configured.
func (c *Config) NarrationEnabled() bool {
	return c.Speech.APIKey != "" && c.Storage.Bucket != ""
}
