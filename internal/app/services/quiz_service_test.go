package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/classroom/internal/app/models"
	"github.com/yigit/classroom/internal/app/models/dto"
	"github.com/yigit/classroom/internal/app/repositories/repotest"
	"github.com/yigit/classroom/internal/pkg/apperrors"
	"github.com/yigit/classroom/internal/pkg/objectid"
)

func TestCreateQuiz(t *testing.T) {
	repo := repotest.NewQuizRepo()
	svc := NewQuizService(repo, zerolog.Nop())

	classID := objectid.New()
	quiz, err := svc.CreateQuiz(context.Background(), &dto.CreateQuizRequest{
		ClassID:   classID,
		Title:     "Chapter 3",
		Questions: json.RawMessage(`[{"q":"2+2?","options":["3","4"],"answer":1}]`),
	})
	require.NoError(t, err)

	assert.True(t, objectid.IsValid(quiz.ID))
	assert.Equal(t, classID, quiz.ClassID)
	assert.NotNil(t, quiz.Submissions)
	assert.Empty(t, quiz.Submissions)
	assert.Contains(t, repo.Quizzes, quiz.ID)
}

func TestCreateQuizAcceptsEmptyQuestionList(t *testing.T) {
	svc := NewQuizService(repotest.NewQuizRepo(), zerolog.Nop())

	_, err := svc.CreateQuiz(context.Background(), &dto.CreateQuizRequest{
		ClassID: "c1", Title: "t", Questions: json.RawMessage(`[]`),
	})
	assert.NoError(t, err)
}

func TestCreateQuizAcceptsTruthyScalars(t *testing.T) {
	svc := NewQuizService(repotest.NewQuizRepo(), zerolog.Nop())

	for _, raw := range []string{`true`, `1`, `"x"`, `{}`} {
		_, err := svc.CreateQuiz(context.Background(), &dto.CreateQuizRequest{
			ClassID: "c1", Title: "t", Questions: json.RawMessage(raw),
		})
		assert.NoError(t, err, raw)
	}
}

func TestCreateQuizMissingFields(t *testing.T) {
	svc := NewQuizService(repotest.NewQuizRepo(), zerolog.Nop())
	questions := json.RawMessage(`[{"q":"?"}]`)

	tests := map[string]dto.CreateQuizRequest{
		"no class":       {Title: "t", Questions: questions},
		"no title":       {ClassID: "c1", Questions: questions},
		"no questions":   {ClassID: "c1", Title: "t"},
		"null questions": {ClassID: "c1", Title: "t", Questions: json.RawMessage(`null`)},
		"empty string":   {ClassID: "c1", Title: "t", Questions: json.RawMessage(`""`)},
		"false":          {ClassID: "c1", Title: "t", Questions: json.RawMessage(`false`)},
		"zero":           {ClassID: "c1", Title: "t", Questions: json.RawMessage(`0`)},
		"zero float":     {ClassID: "c1", Title: "t", Questions: json.RawMessage(`0.0`)},
		"blank title":    {ClassID: "c1", Title: "   ", Questions: questions},
	}

	for name, req := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.CreateQuiz(context.Background(), &req)
			assert.ErrorIs(t, err, apperrors.ErrBadRequest)
		})
	}
}

func TestDeleteQuiz(t *testing.T) {
	id := objectid.New()
	repo := repotest.NewQuizRepo(&models.Quiz{ID: id, Title: "Chapter 3"})
	svc := NewQuizService(repo, zerolog.Nop())

	quiz, err := svc.DeleteQuiz(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Chapter 3", quiz.Title)
	assert.NotContains(t, repo.Quizzes, id)

	_, err = svc.DeleteQuiz(context.Background(), id)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.Equal(t, "Quiz not found", apperrors.UserMessage(err, ""))
}

func TestDeleteQuizInvalidIDSkipsRepository(t *testing.T) {
	repo := repotest.NewQuizRepo()
	svc := NewQuizService(repo, zerolog.Nop())

	for _, id := range []string{"abc", "", "507f1f77bcf86cd79943901z", "507f1f77bcf86cd7994390111"} {
		_, err := svc.DeleteQuiz(context.Background(), id)
		assert.ErrorIs(t, err, apperrors.ErrInvalidQuizID, id)
	}
	assert.Zero(t, repo.Deletes)
}
