package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	"github.com/tgusarov/notekeep/internal/logger"
	"github.com/tgusarov/notekeep/internal/mock"
	"github.com/tgusarov/notekeep/internal/store"
	"github.com/tgusarov/notekeep/models"
)

func newTestNoteSvc(t *testing.T, ctrl *gomock.Controller) (NoteService, *mock.MockNoteRepository) {
	t.Helper()

	repo := mock.NewMockNoteRepository(ctrl)
	return NewNoteService(repo, logger.Nop()), repo
}

func sampleNote() models.Note {
	now := time.Now().UTC()
	return models.Note{
		ID:        primitive.NewObjectID(),
		Title:     "T",
		Content:   "C",
		Images:    []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestNoteService_CreateNote_Delegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestNoteSvc(t, ctrl)
	ctx := context.Background()
	want := sampleNote()

	repo.EXPECT().Create(ctx, "T", "C", nil).Return(want, nil)

	got, err := svc.CreateNote(ctx, "T", "C", nil)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNoteService_GetAllNotes_Delegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestNoteSvc(t, ctrl)
	ctx := context.Background()
	want := []models.Note{sampleNote(), sampleNote()}

	repo.EXPECT().GetAll(ctx).Return(want, nil)

	got, err := svc.GetAllNotes(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNoteService_GetNote_PropagatesNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().Get(ctx, "bogus").Return(models.Note{}, store.ErrNoteNotFound)

	_, err := svc.GetNote(ctx, "bogus")
	assert.ErrorIs(t, err, store.ErrNoteNotFound)
}

func TestNoteService_UpdateNote_PassesPointerFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestNoteSvc(t, ctrl)
	ctx := context.Background()
	want := sampleNote()
	title := "new"

	repo.EXPECT().Update(ctx, want.ID.Hex(), &title, nil).Return(want, nil)

	got, err := svc.UpdateNote(ctx, want.ID.Hex(), &title, nil)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNoteService_DeleteNote_Delegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().Delete(ctx, "some-id").Return(nil)

	assert.NoError(t, svc.DeleteNote(ctx, "some-id"))
}

func TestNoteService_AppendImages_PropagatesRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestNoteSvc(t, ctrl)
	ctx := context.Background()
	boom := errors.New("driver exploded")

	repo.EXPECT().AppendImages(ctx, "some-id", []string{"img-1"}).Return(models.Note{}, boom)

	_, err := svc.AppendImages(ctx, "some-id", []string{"img-1"})
	assert.ErrorIs(t, err, boom)
}
