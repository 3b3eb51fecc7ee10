package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hippo/config"
	"hippo/infras/otel/mocks"
	s3Mocks "hippo/infras/s3/mocks"
	galleryMocks "hippo/internal/domains/gallery/mocks"
	"hippo/internal/domains/gallery/model"
	"hippo/internal/domains/gallery/model/dto"
	"hippo/internal/domains/gallery/service"
	itemMocks "hippo/internal/domains/item/mocks"
	cacheMocks "hippo/shared/cache/mocks"
	"hippo/shared/failure"
)

type galleryFixture struct {
	repo     *galleryMocks.MockItemGallery
	itemRepo *itemMocks.MockItem
	cache    *cacheMocks.MockRedisCache
	s3       *s3Mocks.MockS3
	svc      service.ItemGallery
}

func newGalleryFixture(t *testing.T) *galleryFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &galleryFixture{
		repo:     galleryMocks.NewMockItemGallery(ctrl),
		itemRepo: itemMocks.NewMockItem(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		s3:       s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "hippo-media"

	f.svc = service.New(f.repo, f.itemRepo, cfg, f.cache, mocks.NewOtel(), f.s3)

	return f
}

func (f *galleryFixture) allowAsyncCleanup() {
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.s3.EXPECT().GetObjectNameFromURL(gomock.Any(), gomock.Any()).Return("object").AnyTimes()
	f.s3.EXPECT().DeleteFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func uploadReq(name string) dto.UploadImageRequest {
	return dto.UploadImageRequest{
		Image: &multipart.FileHeader{Filename: name},
	}
}

func storedGallery(itemID string, refs ...string) model.ItemGallery {
	g := model.New(itemID)
	for _, ref := range refs {
		_, _ = g.Append(ref)
	}

	return g
}

func TestGalleryService_Append(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f *galleryFixture)
		wantPos   int
		wantErr   error
		wantFail  bool
	}{
		{
			name: "first image lazy-creates the gallery row",
			setupMock: func(f *galleryFixture) {
				f.itemRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.repo.EXPECT().
					GetByItemID(gomock.Any(), "item-1").
					Return(model.ItemGallery{}, nil)

				f.s3.EXPECT().
					UploadFile(gomock.Any(), "hippo-media", model.EntityName, gomock.Any(), gomock.Any(), gomock.Any()).
					Return("https://cdn.example.com/a.png", nil)

				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, g model.ItemGallery) error {
						assert.Equal(t, "item-1", g.ItemID)
						assert.Equal(t, pq.StringArray{"https://cdn.example.com/a.png"}, g.Slots)
						assert.Equal(t, pq.Int64Array{0}, g.Ord)

						return nil
					})
			},
			wantPos: 0,
		},
		{
			name: "append claims the next slot and position",
			setupMock: func(f *galleryFixture) {
				f.itemRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.repo.EXPECT().
					GetByItemID(gomock.Any(), "item-1").
					Return(storedGallery("item-1", "a", "b"), nil)

				f.s3.EXPECT().
					UploadFile(gomock.Any(), "hippo-media", model.EntityName, gomock.Any(), gomock.Any(), gomock.Any()).
					Return("https://cdn.example.com/c.png", nil)

				f.repo.EXPECT().
					AppendRef(gomock.Any(), "item-1", "https://cdn.example.com/c.png", int64(2)).
					Return(nil)
			},
			wantPos: 2,
		},
		{
			name: "unknown item is not found",
			setupMock: func(f *galleryFixture) {
				f.itemRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantFail: true,
		},
		{
			name: "full gallery rejects before uploading",
			setupMock: func(f *galleryFixture) {
				f.itemRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.repo.EXPECT().
					GetByItemID(gomock.Any(), "item-1").
					Return(storedGallery("item-1", "a", "b", "c", "d", "e"), nil)
			},
			wantErr: model.ErrGalleryFull,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newGalleryFixture(t)
			f.allowAsyncCleanup()
			tt.setupMock(f)

			res, err := f.svc.Append(context.Background(), "item-1", uploadReq("photo.png"))

			time.Sleep(10 * time.Millisecond)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantFail:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.wantPos, res.Position)
			}
		})
	}
}

func TestGalleryService_ReplaceAt(t *testing.T) {
	tests := []struct {
		name      string
		position  int
		setupMock func(f *galleryFixture)
		wantErr   error
	}{
		{
			name:     "replace overwrites the slot in place",
			position: 1,
			setupMock: func(f *galleryFixture) {
				f.repo.EXPECT().
					GetByItemID(gomock.Any(), "item-1").
					Return(storedGallery("item-1", "a", "b", "c"), nil)

				f.s3.EXPECT().
					UploadFile(gomock.Any(), "hippo-media", model.EntityName, gomock.Any(), gomock.Any(), gomock.Any()).
					Return("https://cdn.example.com/b2.png", nil)

				f.repo.EXPECT().
					SetSlot(gomock.Any(), "item-1", int64(1), "https://cdn.example.com/b2.png").
					Return(nil)
			},
		},
		{
			name:     "out of range position never uploads",
			position: 3,
			setupMock: func(f *galleryFixture) {
				f.repo.EXPECT().
					GetByItemID(gomock.Any(), "item-1").
					Return(storedGallery("item-1", "a", "b", "c"), nil)
			},
			wantErr: model.ErrPositionOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newGalleryFixture(t)
			f.allowAsyncCleanup()
			tt.setupMock(f)

			res, err := f.svc.ReplaceAt(context.Background(), "item-1", tt.position, uploadReq("photo.png"))

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.position, res.Position)
			}
		})
	}

	t.Run("absent gallery is not found", func(t *testing.T) {
		f := newGalleryFixture(t)

		f.repo.EXPECT().
			GetByItemID(gomock.Any(), "item-1").
			Return(model.ItemGallery{}, nil)

		_, err := f.svc.ReplaceAt(context.Background(), "item-1", 0, uploadReq("photo.png"))

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("slot write failure cleans up the new object", func(t *testing.T) {
		f := newGalleryFixture(t)

		f.repo.EXPECT().
			GetByItemID(gomock.Any(), "item-1").
			Return(storedGallery("item-1", "a", "b", "c"), nil)

		f.s3.EXPECT().
			UploadFile(gomock.Any(), "hippo-media", model.EntityName, gomock.Any(), gomock.Any(), gomock.Any()).
			Return("https://cdn.example.com/b2.png", nil)

		f.repo.EXPECT().
			SetSlot(gomock.Any(), "item-1", int64(1), "https://cdn.example.com/b2.png").
			Return(errors.New("write failed"))

		f.s3.EXPECT().
			GetObjectNameFromURL("hippo-media", "https://cdn.example.com/b2.png").
			Return("b2.png")

		f.s3.EXPECT().
			DeleteFile(gomock.Any(), "hippo-media", model.EntityName, "b2.png").
			Return(nil)

		_, err := f.svc.ReplaceAt(context.Background(), "item-1", 1, uploadReq("photo.png"))

		time.Sleep(10 * time.Millisecond)

		assert.Error(t, err)
	})
}

func TestGalleryService_DeleteAt(t *testing.T) {
	t.Run("delete compacts both arrays and renumbers", func(t *testing.T) {
		f := newGalleryFixture(t)
		f.allowAsyncCleanup()

		f.repo.EXPECT().
			GetByItemID(gomock.Any(), "item-1").
			Return(storedGallery("item-1", "a", "b", "c"), nil)

		f.repo.EXPECT().
			Replace(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, g model.ItemGallery) error {
				assert.Equal(t, pq.StringArray{"b", "c"}, g.Slots)
				assert.Equal(t, pq.Int64Array{0, 1}, g.Ord)

				return nil
			})

		err := f.svc.DeleteAt(context.Background(), "item-1", 0)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("out of range position", func(t *testing.T) {
		f := newGalleryFixture(t)
		f.allowAsyncCleanup()

		f.repo.EXPECT().
			GetByItemID(gomock.Any(), "item-1").
			Return(storedGallery("item-1", "a"), nil)

		err := f.svc.DeleteAt(context.Background(), "item-1", 1)

		assert.ErrorIs(t, err, model.ErrPositionOutOfRange)
	})

	t.Run("absent gallery is not found", func(t *testing.T) {
		f := newGalleryFixture(t)

		f.repo.EXPECT().
			GetByItemID(gomock.Any(), "item-1").
			Return(model.ItemGallery{}, nil)

		err := f.svc.DeleteAt(context.Background(), "item-1", 0)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestGalleryService_ConcurrentMutations(t *testing.T) {
	t.Run("mutations on one item serialize", func(t *testing.T) {
		const workers = 8

		f := newGalleryFixture(t)
		f.allowAsyncCleanup()

		var inFlight atomic.Int32

		enter := func() {
			assert.Equal(t, int32(1), inFlight.Add(1))
			time.Sleep(time.Millisecond)
		}
		leave := func() {
			inFlight.Add(-1)
		}

		f.repo.EXPECT().
			GetByItemID(gomock.Any(), "item-1").
			DoAndReturn(func(context.Context, string) (model.ItemGallery, error) {
				enter()
				defer leave()

				return storedGallery("item-1", "a", "b", "c"), nil
			}).
			Times(workers)

		f.repo.EXPECT().
			Replace(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, model.ItemGallery) error {
				enter()
				defer leave()

				return nil
			}).
			Times(workers)

		var wg sync.WaitGroup

		for i := 0; i < workers; i++ {
			wg.Add(1)

			go func() {
				defer wg.Done()

				assert.NoError(t, f.svc.DeleteAt(context.Background(), "item-1", 0))
			}()
		}

		wg.Wait()

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("different items do not block each other", func(t *testing.T) {
		f := newGalleryFixture(t)
		f.allowAsyncCleanup()

		entered := make(chan struct{})
		release := make(chan struct{})

		f.repo.EXPECT().
			GetByItemID(gomock.Any(), "item-1").
			DoAndReturn(func(context.Context, string) (model.ItemGallery, error) {
				close(entered)
				<-release

				return storedGallery("item-1", "a"), nil
			})

		f.repo.EXPECT().
			GetByItemID(gomock.Any(), "item-2").
			Return(storedGallery("item-2", "a"), nil)

		f.repo.EXPECT().
			Replace(gomock.Any(), gomock.Any()).
			Return(nil).
			Times(2)

		done := make(chan struct{})

		go func() {
			defer close(done)

			assert.NoError(t, f.svc.DeleteAt(context.Background(), "item-1", 0))
		}()

		// item-1's critical section is parked on the channel; item-2 must still
		// get through on its own lock
		<-entered
		assert.NoError(t, f.svc.DeleteAt(context.Background(), "item-2", 0))

		close(release)
		<-done

		time.Sleep(10 * time.Millisecond)
	})
}

func TestGalleryService_ReadAt(t *testing.T) {
	tests := []struct {
		name      string
		position  int
		setupMock func(f *galleryFixture)
		wantURL   string
		wantErr   error
	}{
		{
			name:     "absent gallery reads as no image",
			position: 0,
			setupMock: func(f *galleryFixture) {
				f.repo.EXPECT().
					GetByItemID(gomock.Any(), "item-1").
					Return(model.ItemGallery{}, nil)
			},
			wantURL: "",
		},
		{
			name:     "existing position resolves through the order array",
			position: 1,
			setupMock: func(f *galleryFixture) {
				f.repo.EXPECT().
					GetByItemID(gomock.Any(), "item-1").
					Return(storedGallery("item-1", "a", "b"), nil)
			},
			wantURL: "b",
		},
		{
			name:     "position past the end of an existing gallery",
			position: 2,
			setupMock: func(f *galleryFixture) {
				f.repo.EXPECT().
					GetByItemID(gomock.Any(), "item-1").
					Return(storedGallery("item-1", "a", "b"), nil)
			},
			wantErr: model.ErrPositionOutOfRange,
		},
		{
			name:      "negative position is rejected before the lookup",
			position:  -1,
			setupMock: func(f *galleryFixture) {},
			wantErr:   model.ErrPositionOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newGalleryFixture(t)
			tt.setupMock(f)

			res, err := f.svc.ReadAt(context.Background(), "item-1", tt.position)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantURL, res.URL)
			}
		})
	}
}

func TestGalleryService_ReadAllInOrder(t *testing.T) {
	f := newGalleryFixture(t)

	f.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	f.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	f.repo.EXPECT().
		GetByItemID(gomock.Any(), "item-1").
		Return(model.ItemGallery{
			ItemID: "item-1",
			Slots:  pq.StringArray{"a", "b", "c"},
			Ord:    pq.Int64Array{2, 0, 1},
		}, nil)

	res, err := f.svc.ReadAllInOrder(context.Background(), "item-1")

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Equal(t, 3, res.Count)
	assert.Equal(t, "c", res.Images[0].URL)
	assert.Equal(t, "a", res.Images[1].URL)
	assert.Equal(t, "b", res.Images[2].URL)
}

func TestGalleryService_ReadAllInOrderAbsent(t *testing.T) {
	f := newGalleryFixture(t)

	f.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	f.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	f.repo.EXPECT().
		GetByItemID(gomock.Any(), "item-1").
		Return(model.ItemGallery{}, nil)

	res, err := f.svc.ReadAllInOrder(context.Background(), "item-1")

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Equal(t, 0, res.Count)
	assert.Empty(t, res.Images)
}

func TestGalleryService_Count(t *testing.T) {
	f := newGalleryFixture(t)

	f.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	f.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	f.repo.EXPECT().
		GetByItemID(gomock.Any(), "item-1").
		Return(storedGallery("item-1", "a", "b"), nil)

	total, err := f.svc.Count(context.Background(), "item-1")

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestGalleryService_DeleteAll(t *testing.T) {
	t.Run("removes the row and its objects", func(t *testing.T) {
		f := newGalleryFixture(t)
		f.allowAsyncCleanup()

		f.repo.EXPECT().
			GetByItemID(gomock.Any(), "item-1").
			Return(storedGallery("item-1", "a", "b"), nil)

		f.repo.EXPECT().
			Delete(gomock.Any(), "item-1").
			Return(nil)

		err := f.svc.DeleteAll(context.Background(), "item-1")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("absent gallery is a no-op", func(t *testing.T) {
		f := newGalleryFixture(t)

		f.repo.EXPECT().
			GetByItemID(gomock.Any(), "item-1").
			Return(model.ItemGallery{}, nil)

		err := f.svc.DeleteAll(context.Background(), "item-1")

		assert.NoError(t, err)
	})
}

func TestGalleryService_AppendStorageFailure(t *testing.T) {
	f := newGalleryFixture(t)
	f.allowAsyncCleanup()

	f.itemRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil)

	f.repo.EXPECT().
		GetByItemID(gomock.Any(), "item-1").
		Return(storedGallery("item-1", "a"), nil)

	f.s3.EXPECT().
		UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("https://cdn.example.com/b.png", nil)

	f.repo.EXPECT().
		AppendRef(gomock.Any(), "item-1", gomock.Any(), int64(1)).
		Return(errors.New("write failed"))

	_, err := f.svc.Append(context.Background(), "item-1", uploadReq("photo.png"))

	assert.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}
