package services_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/simhonchourasia/playbet-be/models"
	"github.com/simhonchourasia/playbet-be/services"
	"github.com/simhonchourasia/playbet-be/services/mocks"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func newContentService(t *testing.T) (*services.ContentService, *mocks.MockFeatureImageStore, *mocks.MockSocialLinkStore, string) {
	ctrl := gomock.NewController(t)
	images := mocks.NewMockFeatureImageStore(ctrl)
	links := mocks.NewMockSocialLinkStore(ctrl)
	dir := t.TempDir()
	return services.NewContentService(images, links, dir, nullLogger()), images, links, dir
}

func writeUpload(content string) services.SaveFunc {
	return func(dst string) error {
		return os.WriteFile(dst, []byte(content), 0o644)
	}
}

func TestContentService_AddFeatureImage(t *testing.T) {
	svc, images, _, dir := newContentService(t)
	images.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	image, err := svc.AddFeatureImage(context.Background(),
		models.FeatureImageRequest{Title: " Welcome ", Order: 1},
		"banner.PNG", writeUpload("png-bytes"))
	require.NoError(t, err)
	require.Equal(t, "Welcome", image.Title)
	require.True(t, strings.HasPrefix(image.Image, services.UploadPrefix+"/"))
	require.True(t, strings.HasSuffix(image.Image, ".png"))

	data, err := os.ReadFile(filepath.Join(dir, filepath.Base(image.Image)))
	require.NoError(t, err)
	require.Equal(t, "png-bytes", string(data))
}

func TestContentService_AddFeatureImage_RejectsNonImages(t *testing.T) {
	for _, name := range []string{"shell.php", "logo.svg", "noext"} {
		t.Run(name, func(t *testing.T) {
			svc, _, _, dir := newContentService(t)

			_, err := svc.AddFeatureImage(context.Background(), models.FeatureImageRequest{}, name, writeUpload("<script>"))
			require.ErrorIs(t, err, services.ErrInvalidUpload)

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			require.Empty(t, entries)
		})
	}
}

func TestContentService_AddFeatureImage_SaveFailure(t *testing.T) {
	svc, _, _, dir := newContentService(t)
	partial := func(dst string) error {
		require.NoError(t, os.WriteFile(dst, []byte("half"), 0o644))
		return errors.New("unexpected EOF")
	}

	_, err := svc.AddFeatureImage(context.Background(), models.FeatureImageRequest{}, "a.png", partial)
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestContentService_AddFeatureImage_StoreFailureRemovesFile(t *testing.T) {
	svc, images, _, dir := newContentService(t)
	images.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("mongo down"))

	_, err := svc.AddFeatureImage(context.Background(), models.FeatureImageRequest{}, "a.jpg", writeUpload("x"))
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestContentService_DeleteFeatureImage(t *testing.T) {
	svc, images, _, dir := newContentService(t)
	id := primitive.NewObjectID()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "old.jpg"), []byte("x"), 0o644))

	images.EXPECT().FindByID(gomock.Any(), id).Return(&models.FeatureImage{ID: id, Image: "/uploads/old.jpg"}, nil)
	images.EXPECT().Delete(gomock.Any(), id).Return(nil)

	require.NoError(t, svc.DeleteFeatureImage(context.Background(), id))
	_, err := os.Stat(filepath.Join(dir, "old.jpg"))
	require.True(t, os.IsNotExist(err))
}

func TestContentService_DeleteFeatureImage_NotFound(t *testing.T) {
	svc, images, _, _ := newContentService(t)
	images.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, mongo.ErrNoDocuments)

	require.ErrorIs(t, svc.DeleteFeatureImage(context.Background(), primitive.NewObjectID()), services.ErrNotFound)
}

func TestContentService_SocialLinks(t *testing.T) {
	svc, _, links, _ := newContentService(t)
	id := primitive.NewObjectID()
	req := models.SocialLinkRequest{Platform: " telegram ", URL: "https://t.me/playbet", Order: 2}

	links.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, link *models.SocialLink) error {
			require.Equal(t, "telegram", link.Platform)
			return nil
		})
	links.EXPECT().Update(gomock.Any(), id, req).Return(nil, mongo.ErrNoDocuments)
	links.EXPECT().Delete(gomock.Any(), id).Return(nil)

	_, err := svc.AddSocialLink(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.UpdateSocialLink(context.Background(), id, req)
	require.ErrorIs(t, err, services.ErrNotFound)

	require.NoError(t, svc.DeleteSocialLink(context.Background(), id))
}
