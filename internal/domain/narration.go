package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AudioSegment is one narrated paragraph's cached audio asset.
type AudioSegment struct {
	ID           uuid.UUID
	Hash         string
	LanguageCode string
	VoiceID      string
	Version      int
	AudioURL     string
	CharCount    int
	CreatedAt    time.Time
}

// NarrationReport is a listener's report about a segment.
type NarrationReport struct {
	ID        uuid.UUID
	SegmentID uuid.UUID
	Version   int
	IssueType IssueType
	Comment   *string
	SessionID string
	Status    ReportStatus
	CreatedAt time.Time
}

// SegmentHash is the cache key of a narrated segment: sha256 over the
// normalized text, language, voice and version.
func SegmentHash(text, languageCode, voiceID string, version int) string {
	h := sha256.New()
	h.Write([]byte(strings.TrimSpace(text)))
	h.Write([]byte{0})
	h.Write([]byte(strings.ToLower(strings.TrimSpace(languageCode))))
	h.Write([]byte{0})
	h.Write([]byte(strings.TrimSpace(voiceID)))
	h.Write([]byte{0})
	h.Write([]byte(strconv.Itoa(version)))
	return hex.EncodeToString(h.Sum(nil))
}
