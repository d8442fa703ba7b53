package accessmust_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	driveaccess "github.com/openvault/go-driveaccess"
	"github.com/openvault/go-driveaccess/accessmust"
)

type stubTransport struct {
	response json.RawMessage
	err      error
}

func (t *stubTransport) Get(ctx context.Context, path string) (json.RawMessage, error) {
	return t.response, t.err
}

func (t *stubTransport) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return t.response, t.err
}

func (t *stubTransport) Delete(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return t.response, t.err
}

func TestAccessControl_ReturnsOnSuccess(t *testing.T) {
	transport := &stubTransport{response: json.RawMessage(`{"drive_id":"123","accessor_id":"u1","revoked_count":0}`)}
	access := accessmust.ForDrive(transport, "123")

	result := access.Revoke(context.Background(), driveaccess.User("u1"))
	if result.RevokedCount != 0 {
		t.Fatalf("RevokedCount = %d, want 0", result.RevokedCount)
	}
}

func TestAccessControl_PanicsOnError(t *testing.T) {
	transport := &stubTransport{err: errors.New("boom")}
	access := accessmust.ForItem(transport, "123", "456")

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on transport error")
		}
	}()
	access.List(context.Background())
}
