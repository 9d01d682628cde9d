package announcement

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidSettings = errors.New("invalid announcement settings")

const triggerLayout = "15:04"

type Settings struct {
	Enabled           bool       `json:"enabled"`
	Sentences         []string   `json:"sentences"`
	SentencesPerPopup int        `json:"sentencesPerPopup"`
	TriggerTimes      []string   `json:"triggerTimes"`
	LastTriggeredAt   *time.Time `json:"lastTriggeredAt"`
}

func DefaultSettings() Settings {
	return Settings{
		Sentences:         []string{},
		SentencesPerPopup: 1,
		TriggerTimes:      []string{},
	}
}

// Trigger times must be zero padded "HH:mm".
func (s Settings) normalize() (Settings, error) {
	sentences := make([]string, 0, len(s.Sentences))
	for _, sentence := range s.Sentences {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) != 0 {
			sentences = append(sentences, sentence)
		}
	}
	s.Sentences = sentences

	if s.SentencesPerPopup <= 0 {
		s.SentencesPerPopup = 1
	}

	times := make([]string, 0, len(s.TriggerTimes))
	seen := map[string]bool{}

	for _, t := range s.TriggerTimes {
		t = strings.TrimSpace(t)

		parsed, err := time.Parse(triggerLayout, t)

		if err != nil || parsed.Format(triggerLayout) != t {
			return Settings{}, fmt.Errorf("trigger time '%v' is not HH:mm: %w", t, ErrInvalidSettings)
		}

		if !seen[t] {
			seen[t] = true
			times = append(times, t)
		}
	}
	s.TriggerTimes = times

	return s, nil
}
