package captcha

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueFourDigitCode(t *testing.T) {
	s := NewService(time.Minute)

	for i := 0; i < 50; i++ {
		ch := s.Issue()
		assert.NotEmpty(t, ch.ID)
		assert.Regexp(t, regexp.MustCompile(`^[1-9]\d{3}$`), ch.Code)
	}
}

func TestVerifyCorrectAnswer(t *testing.T) {
	s := NewService(time.Minute)
	ch := s.Issue()

	assert.True(t, s.Verify(ch.ID, ch.Code))
}

func TestChallengeIsSingleUse(t *testing.T) {
	s := NewService(time.Minute)
	ch := s.Issue()

	require.True(t, s.Verify(ch.ID, ch.Code))
	assert.False(t, s.Verify(ch.ID, ch.Code), "a consumed challenge must not verify again")
}

func TestWrongAnswerConsumesChallenge(t *testing.T) {
	s := NewService(time.Minute)
	ch := s.Issue()

	require.False(t, s.Verify(ch.ID, "0000"))
	assert.False(t, s.Verify(ch.ID, ch.Code), "a missed challenge forces a fresh one")
}

func TestUnknownChallenge(t *testing.T) {
	s := NewService(time.Minute)
	assert.False(t, s.Verify("no-such-id", "1234"))
}
