package impl

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Decentr-net/quill/internal/ledger"
	"github.com/Decentr-net/quill/internal/ledger/memory"
	"github.com/Decentr-net/quill/internal/ledger/mock"
	"github.com/Decentr-net/quill/internal/schema"
	"github.com/Decentr-net/quill/internal/service"
	"github.com/Decentr-net/quill/internal/session"
)

var (
	ctx = context.Background()
	app = schema.App{Name: "quill", Version: "1"}
)

type mockLedger struct {
	*mock.MockQuerier
	*mock.MockFetcher
	*mock.MockUploader
	*mock.MockFunder
	*mock.MockValidator
}

func newMockLedger(ctrl *gomock.Controller) mockLedger {
	return mockLedger{
		MockQuerier:   mock.NewMockQuerier(ctrl),
		MockFetcher:   mock.NewMockFetcher(ctrl),
		MockUploader:  mock.NewMockUploader(ctrl),
		MockFunder:    mock.NewMockFunder(ctrl),
		MockValidator: mock.NewMockValidator(ctrl),
	}
}

func newService(t *testing.T, l ledger.Ledger) service.Service {
	s, err := session.Connect(ctx, app, l)
	require.NoError(t, err)

	return New(s)
}

var priorWork = ledger.Record{
	ID:        "prior",
	Timestamp: 1,
	Address:   "owner",
	Tags: app.Tags(schema.Work, schema.Add, schema.TextContent,
		ledger.Tag{Name: schema.TitleTag, Value: "title"},
		ledger.Tag{Name: schema.DescriptionTag, Value: "description"},
		ledger.Tag{Name: schema.AuthorIDTag, Value: "author"},
	),
}

func TestSrv_UpdateWork_Ownership(t *testing.T) {
	tt := []struct {
		name    string
		address string
		err     error
	}{
		{
			name:    "owner",
			address: "owner",
		},
		{
			name:    "stranger",
			address: "stranger",
			err:     service.ErrOwnership,
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			l := newMockLedger(ctrl)
			srv := newService(t, l)

			l.MockQuerier.EXPECT().QueryByIDs(gomock.Any(), []string{"prior"}).Return([]ledger.Record{priorWork}, nil)
			l.MockValidator.EXPECT().Owner(gomock.Any(), "prior").Return("owner", nil)

			if tc.err == nil {
				l.MockUploader.EXPECT().Upload(gomock.Any(), []byte("new content"), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ []byte, tags ledger.Tags) (*ledger.Receipt, error) {
						assert.Equal(t, string(schema.Update), tags.Get(schema.ActionTag))
						assert.Equal(t, "title", tags.Get(schema.TitleTag))
						return &ledger.Receipt{ID: "new"}, nil
					})
			}

			rc, err := srv.UpdateWork(ctx, "prior", service.WorkInput{
				Title:       "title",
				Description: "description",
				Content:     "new content",
				AuthorID:    "author",
			}, tc.address, false)

			if tc.err != nil {
				require.True(t, errors.Is(err, tc.err))
				require.Nil(t, rc)
				return
			}

			require.NoError(t, err)
			require.Equal(t, "new", rc.ID)
		})
	}
}

func TestSrv_UpdateWork_IdentityChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	l := newMockLedger(ctrl)
	srv := newService(t, l)

	l.MockQuerier.EXPECT().QueryByIDs(gomock.Any(), []string{"prior"}).Return([]ledger.Record{priorWork}, nil)
	l.MockValidator.EXPECT().Owner(gomock.Any(), "prior").Return("owner", nil)

	_, err := srv.UpdateWork(ctx, "prior", service.WorkInput{
		Title:    "other title",
		AuthorID: "author",
	}, "owner", false)
	require.True(t, errors.Is(err, service.ErrInvalidRequest))
}

func TestSrv_RemoveWork(t *testing.T) {
	ctrl := gomock.NewController(t)
	l := newMockLedger(ctrl)
	srv := newService(t, l)

	l.MockQuerier.EXPECT().QueryByIDs(gomock.Any(), []string{"prior"}).Return([]ledger.Record{priorWork}, nil)
	l.MockValidator.EXPECT().Owner(gomock.Any(), "prior").Return("owner", nil)
	l.MockUploader.EXPECT().Upload(gomock.Any(), gomock.Nil(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ []byte, tags ledger.Tags) (*ledger.Receipt, error) {
			assert.Equal(t, string(schema.Remove), tags.Get(schema.ActionTag))
			assert.Equal(t, string(schema.Work), tags.Get(schema.EntityTypeTag))
			assert.Equal(t, "title", tags.Get(schema.TitleTag))
			assert.Equal(t, "description", tags.Get(schema.DescriptionTag))
			assert.Equal(t, "author", tags.Get(schema.AuthorIDTag))
			return &ledger.Receipt{ID: "removed"}, nil
		})

	rc, err := srv.RemoveWork(ctx, "prior", "owner", false)
	require.NoError(t, err)
	require.Equal(t, "removed", rc.ID)
}

func TestSrv_RemoveWork_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	l := newMockLedger(ctrl)
	srv := newService(t, l)

	l.MockQuerier.EXPECT().QueryByIDs(gomock.Any(), []string{"prior"}).Return(nil, nil)

	_, err := srv.RemoveWork(ctx, "prior", "owner", false)
	require.True(t, errors.Is(err, ledger.ErrNotFound))
}

func TestSrv_RemoveWorkResponse(t *testing.T) {
	prior := ledger.Record{
		ID:        "response",
		Timestamp: 1,
		Address:   "responder-addr",
		Tags: app.Tags(schema.WorkResponse, schema.Add, schema.TextContent,
			ledger.Tag{Name: schema.WorkIDTag, Value: "work"},
			ledger.Tag{Name: schema.WorkTitleTag, Value: "title"},
			ledger.Tag{Name: schema.ResponderIDTag, Value: "responder"},
		),
	}

	tt := []struct {
		name    string
		records []ledger.Record
		owner   string
		err     error
	}{
		{
			name:    "success",
			records: []ledger.Record{prior},
			owner:   "responder-addr",
		},
		{
			name:    "ownership",
			records: []ledger.Record{prior},
			owner:   "stranger",
			err:     service.ErrOwnership,
		},
		{
			name:    "not a response",
			records: []ledger.Record{priorWork},
			err:     ledger.ErrNotFound,
		},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			l := newMockLedger(ctrl)
			srv := newService(t, l)

			l.MockQuerier.EXPECT().QueryByIDs(gomock.Any(), []string{"response"}).Return(tc.records, nil)
			if tc.owner != "" {
				l.MockValidator.EXPECT().Owner(gomock.Any(), "response").Return(tc.owner, nil)
			}
			if tc.err == nil {
				l.MockUploader.EXPECT().Upload(gomock.Any(), gomock.Nil(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ []byte, tags ledger.Tags) (*ledger.Receipt, error) {
						assert.Equal(t, string(schema.Remove), tags.Get(schema.ActionTag))
						assert.Equal(t, string(schema.WorkResponse), tags.Get(schema.EntityTypeTag))
						assert.Equal(t, "response", tags.Get(schema.ResponseIDTag))
						assert.Equal(t, "work", tags.Get(schema.WorkIDTag))
						assert.Equal(t, "responder", tags.Get(schema.ResponderIDTag))
						return &ledger.Receipt{ID: "removed"}, nil
					})
			}

			rc, err := srv.RemoveWorkResponse(ctx, "response", "responder-addr", false)
			if tc.err != nil {
				require.True(t, errors.Is(err, tc.err), err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, "removed", rc.ID)
		})
	}
}

func TestSrv_Fund(t *testing.T) {
	tt := []struct {
		name     string
		priceErr error
		fundErr  error
	}{
		{
			name: "success",
		},
		{
			name:     "price",
			priceErr: context.DeadlineExceeded,
		},
		{
			name:    "insufficient balance",
			fundErr: ledger.ErrInsufficientBalance,
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			l := newMockLedger(ctrl)
			srv := newService(t, l)

			l.MockFunder.EXPECT().Price(gomock.Any(), len("content")).Return(uint64(70), tc.priceErr)
			if tc.priceErr == nil {
				l.MockFunder.EXPECT().Fund(gomock.Any(), uint64(70)).Return(tc.fundErr)
			}
			if tc.priceErr == nil && tc.fundErr == nil {
				l.MockUploader.EXPECT().Upload(gomock.Any(), []byte("content"), gomock.Any()).Return(&ledger.Receipt{ID: "id"}, nil)
			}

			rc, err := srv.AddWork(ctx, service.WorkInput{
				Title:    "title",
				Content:  "content",
				AuthorID: "author",
			}, true)

			switch {
			case tc.priceErr != nil:
				require.True(t, errors.Is(err, tc.priceErr))
			case tc.fundErr != nil:
				require.True(t, errors.Is(err, tc.fundErr))
			default:
				require.NoError(t, err)
				require.Equal(t, "id", rc.ID)
			}
		})
	}
}

func TestSrv_InvalidRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := newService(t, newMockLedger(ctrl))

	_, err := srv.AddWork(ctx, service.WorkInput{Title: "title"}, false)
	require.True(t, errors.Is(err, service.ErrInvalidRequest))

	_, err = srv.AddFollow(ctx, "follower", "", false)
	require.True(t, errors.Is(err, service.ErrInvalidRequest))

	_, err = srv.AddProfile(ctx, service.ProfileInput{Username: "alice"}, "", false)
	require.True(t, errors.Is(err, service.ErrInvalidRequest))
}

func TestSrv_ReadOnlySession(t *testing.T) {
	s, err := session.ConnectReader(ctx, app, memory.New("owner"))
	require.NoError(t, err)

	_, err = New(s).AddTopic(ctx, "go", false)
	require.True(t, errors.Is(err, session.ErrNotConnected))
}

func TestSrv_RoundTrip(t *testing.T) {
	l := memory.New("owner", memory.WithFunder(ledger.NewLocalFunder(1000, 1)))
	srv := newService(t, l)

	social := "https://example.com/alice"
	profile, err := srv.AddProfile(ctx, service.ProfileInput{
		Username:          "alice",
		Fullname:          "Alice",
		Description:       "writer",
		SocialLinkPrimary: &social,
		Avatar:            []byte{1, 2, 3},
		AvatarContentType: "image/png",
	}, "owner", true)
	require.NoError(t, err)

	work, err := srv.AddWork(ctx, service.WorkInput{
		Title:       "title",
		Description: "description",
		Content:     "content",
		AuthorID:    profile.ID,
	}, true)
	require.NoError(t, err)
	require.EqualValues(t, 1000-3-len("content"), l.Balance())

	w, err := srv.GetWork(ctx, work.ID)
	require.NoError(t, err)
	require.NotNil(t, w)
	assert.Equal(t, work.ID, w.ID)
	assert.Equal(t, "title", w.Title)
	assert.Equal(t, "description", w.Description)
	assert.Equal(t, "content", w.Content)
	assert.Equal(t, profile.ID, w.AuthorID)
	assert.Equal(t, "alice", w.Username)
	assert.Equal(t, "Alice", w.Fullname)
	assert.Equal(t, "writer", w.AuthorDescription)

	p, err := srv.GetProfile(ctx, profile.ID)
	require.NoError(t, err)
	require.NotNil(t, p)
	require.NotNil(t, p.SocialLinkPrimary)
	assert.Equal(t, social, *p.SocialLinkPrimary)
	assert.Nil(t, p.SocialLinkSecond)
	assert.Equal(t, []byte{1, 2, 3}, p.Avatar)

	_, err = srv.UpdateWork(ctx, work.ID, service.WorkInput{
		Title:       "title",
		Description: "description",
		Content:     "edited",
		AuthorID:    profile.ID,
	}, "owner", false)
	require.NoError(t, err)

	w, err = srv.GetWork(ctx, work.ID)
	require.NoError(t, err)
	require.NotNil(t, w)
	assert.Equal(t, work.ID, w.ID)
	assert.Equal(t, "edited", w.Content)

	_, err = srv.AddWorkLike(ctx, work.ID, profile.ID, false)
	require.NoError(t, err)

	liked, err := srv.HasLiked(ctx, work.ID, profile.ID)
	require.NoError(t, err)
	require.True(t, liked)

	_, err = srv.RemoveProfile(ctx, profile.ID, "owner", false)
	require.True(t, errors.Is(err, service.ErrHasDependents))

	_, err = srv.RemoveWork(ctx, work.ID, "owner", false)
	require.NoError(t, err)

	w, err = srv.GetWork(ctx, work.ID)
	require.NoError(t, err)
	require.Nil(t, w)

	first, err := srv.AddWorkResponse(ctx, service.ResponseInput{WorkID: work.ID, WorkTitle: "title", ResponderID: profile.ID, Content: "first"}, false)
	require.NoError(t, err)
	_, err = srv.AddWorkResponse(ctx, service.ResponseInput{WorkID: work.ID, WorkTitle: "title", ResponderID: profile.ID, Content: "second"}, false)
	require.NoError(t, err)

	responses, err := srv.GetWorkResponses(ctx, work.ID, 10, "")
	require.NoError(t, err)
	require.Len(t, responses.Items, 2)

	_, err = srv.RemoveWorkResponse(ctx, first.ID, "owner", false)
	require.NoError(t, err)

	responses, err = srv.GetWorkResponses(ctx, work.ID, 10, "")
	require.NoError(t, err)
	require.Len(t, responses.Items, 1)
	assert.Equal(t, "second", responses.Items[0].ResponseContent)

	_, err = srv.RemoveProfile(ctx, profile.ID, "owner", false)
	require.True(t, errors.Is(err, service.ErrHasDependents))

	_, err = srv.RemoveWorkResponse(ctx, responses.Items[0].ID, "owner", false)
	require.NoError(t, err)

	_, err = srv.RemoveProfile(ctx, profile.ID, "stranger", false)
	require.True(t, errors.Is(err, service.ErrOwnership))

	_, err = srv.RemoveProfile(ctx, profile.ID, "owner", false)
	require.NoError(t, err)

	p, err = srv.GetProfile(ctx, profile.ID)
	require.NoError(t, err)
	require.Nil(t, p)

	_, err = srv.AddTopic(ctx, "go", true)
	require.NoError(t, err)

	_, err = srv.AddWork(ctx, service.WorkInput{Title: "big", AuthorID: profile.ID, Content: string(make([]byte, 2000))}, true)
	require.True(t, errors.Is(err, ledger.ErrInsufficientBalance))
}
