package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

type storageUpstream struct {
	failPresign bool
	failPut     bool

	presignCalls int32
	putCalls     int32

	mu      sync.Mutex
	objects map[string][]byte
}

func (u *storageUpstream) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/uploads/presign":
			atomic.AddInt32(&u.presignCalls, 1)
			if u.failPresign {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			var body struct {
				FileName string `json:"fileName"`
			}
			json.NewDecoder(r.Body).Decode(&body)
			json.NewEncoder(w).Encode(map[string]string{
				"presignedUrl": "http://" + r.Host + "/storage/" + body.FileName,
				"publicUrl":    "https://cdn.example.com/" + body.FileName,
			})
		case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/storage/"):
			atomic.AddInt32(&u.putCalls, 1)
			if u.failPut {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			data, _ := io.ReadAll(r.Body)
			u.mu.Lock()
			if u.objects == nil {
				u.objects = make(map[string][]byte)
			}
			u.objects[strings.TrimPrefix(r.URL.Path, "/storage/")] = data
			u.mu.Unlock()
			w.WriteHeader(http.StatusOK)
		default:
			http.NotFound(w, r)
		}
	})
}

func TestUploadAllReturnsPublicURLsInOrder(t *testing.T) {
	fake := &storageUpstream{}
	svc := NewUploadService(newTestUpstream(t, fake.handler()))

	urls, err := svc.UploadAll(context.Background(), []Attachment{
		{FileName: "front.jpg", ContentType: "image/jpeg", Data: []byte("front")},
		{FileName: "lobby.png", ContentType: "image/png", Data: []byte("lobby")},
	})
	require.NoError(t, err)
	require.Len(t, urls, 2)
	require.True(t, strings.HasSuffix(urls[0], ".jpg"), "object key keeps the original extension")
	require.True(t, strings.HasSuffix(urls[1], ".png"))
	require.Equal(t, int32(2), atomic.LoadInt32(&fake.presignCalls))
	require.Equal(t, int32(2), atomic.LoadInt32(&fake.putCalls))

	fake.mu.Lock()
	defer fake.mu.Unlock()
	require.Len(t, fake.objects, 2)
}

func TestUploadAllWithNoAttachmentsSkipsPresigning(t *testing.T) {
	fake := &storageUpstream{}
	svc := NewUploadService(newTestUpstream(t, fake.handler()))

	urls, err := svc.UploadAll(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, urls)
	require.Zero(t, atomic.LoadInt32(&fake.presignCalls))
}

func TestPresignFailureNamesTheAttachment(t *testing.T) {
	fake := &storageUpstream{failPresign: true}
	svc := NewUploadService(newTestUpstream(t, fake.handler()))

	_, err := svc.UploadAll(context.Background(), []Attachment{
		{FileName: "floorplan.pdf", ContentType: "application/pdf", Data: []byte("%PDF")},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "floorplan.pdf")
	require.Zero(t, atomic.LoadInt32(&fake.putCalls))
}

func TestStoragePutFailureAbortsRemainingUploads(t *testing.T) {
	fake := &storageUpstream{failPut: true}
	svc := NewUploadService(newTestUpstream(t, fake.handler()))

	_, err := svc.UploadAll(context.Background(), []Attachment{
		{FileName: "a.jpg", ContentType: "image/jpeg", Data: []byte("a")},
		{FileName: "b.jpg", ContentType: "image/jpeg", Data: []byte("b")},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "a.jpg")
	require.Equal(t, int32(1), atomic.LoadInt32(&fake.presignCalls), "later attachments never start")
}
