package intent

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hksports/sportsbuddy/core/logger"
)

func TestMain(m *testing.M) {
	_ = logger.InitLogger(nil)
	os.Exit(m.Run())
}

type fakeSubmitter struct {
	reply string
	err   error
	last  string
}

func (f *fakeSubmitter) Submit(_ context.Context, content string) (string, error) {
	f.last = content
	return f.reply, f.err
}

func TestClassifyParsesJSONReply(t *testing.T) {
	fake := &fakeSubmitter{reply: `{"intent": "sport_now", "extracted_data": {"sport": "Tennis", "location": "Victoria Park", "time": "19:00"}}`}
	c := NewClassifier(fake)

	res := c.Classify(context.Background(), "I'm playing tennis at Victoria Park at 7")
	assert.Equal(t, SportNow, res.Intent)
	assert.Equal(t, "Tennis", res.Extracted.Sport)
	assert.Equal(t, "Victoria Park", res.Extracted.Location)
	assert.Equal(t, "19:00", res.Extracted.Time)
	assert.Contains(t, fake.last, "intent classifier")
}

func TestClassifyToleratesSingleQuotesAndProse(t *testing.T) {
	fake := &fakeSubmitter{reply: "Sure! Here is the result:\n{'intent': 'find_buddy', 'extracted_data': {}}\nLet me know if you need more."}
	c := NewClassifier(fake)

	res := c.Classify(context.Background(), "anyone to play with?")
	assert.Equal(t, FindBuddy, res.Intent)
}

func TestClassifyKeywordFallback(t *testing.T) {
	fake := &fakeSubmitter{reply: "the user intent is sport_now but I cannot produce JSON"}
	c := NewClassifier(fake)

	res := c.Classify(context.Background(), "playing football now")
	assert.Equal(t, SportNow, res.Intent)
	assert.Empty(t, res.Extracted.Sport)
}

func TestClassifyDefaultsToGeneralQuestion(t *testing.T) {
	c := NewClassifier(&fakeSubmitter{reply: "I am not sure what you mean."})
	res := c.Classify(context.Background(), "what's the offside rule?")
	assert.Equal(t, GeneralQuestion, res.Intent)
}

func TestClassifyUnknownIntentNormalised(t *testing.T) {
	c := NewClassifier(&fakeSubmitter{reply: `{"intent": "weather_report", "extracted_data": {}}`})
	res := c.Classify(context.Background(), "will it rain?")
	assert.Equal(t, GeneralQuestion, res.Intent)
}

func TestClassifySubmitErrorDegrades(t *testing.T) {
	c := NewClassifier(&fakeSubmitter{err: errors.New("boom")})
	res := c.Classify(context.Background(), "hello")
	assert.Equal(t, GeneralQuestion, res.Intent)
}

func TestAnswer(t *testing.T) {
	fake := &fakeSubmitter{reply: "Drink water and warm up first."}
	c := NewClassifier(fake)

	assert.Equal(t, "Drink water and warm up first.", c.Answer(context.Background(), "tips for running?"))
	assert.Contains(t, fake.last, "sports assistant")
}

func TestAnswerErrorFallsBack(t *testing.T) {
	c := NewClassifier(&fakeSubmitter{err: errors.New("boom")})
	got := c.Answer(context.Background(), "tips?")
	assert.Equal(t, answerFallback, got)
}
