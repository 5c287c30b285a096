package mock

import "context"

type purgeCall struct {
	Bucket    string
	ObjectKey string
}

// MockDispatcher implements task dispatching for tests.
type MockDispatcher struct {
	PurgeCalled bool
	PurgeCalls  []purgeCall
	PurgeErr    error
}

func (m *MockDispatcher) EnqueuePurgeObject(ctx context.Context, bucket, objectKey string) error {
	m.PurgeCalled = true
	m.PurgeCalls = append(m.PurgeCalls, purgeCall{Bucket: bucket, ObjectKey: objectKey})
	return m.PurgeErr
}
