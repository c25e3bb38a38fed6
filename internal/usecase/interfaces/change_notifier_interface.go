package interfaces

import "context"

// IChangeNotifier fans collection-changed events out to watchers. It backs
// the store's "subscribe with continuous snapshot callback" contract: every
// successful write publishes the collection name, and each subscriber gets a
// signal to re-read its snapshot.
//
// Subscribe returns a channel that receives one signal per remote change and
// is closed when ctx is done; callers must stop consuming after that.
type IChangeNotifier interface {
	Publish(ctx context.Context, collection string) error
	Subscribe(ctx context.Context, collection string) (<-chan struct{}, error)
}
