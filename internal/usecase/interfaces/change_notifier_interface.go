package interfaces

import "context"

// IChangeNotifier is poked after every successful servico mutation so live
// subscriptions can re-evaluate their result sets.
type IChangeNotifier interface {
	NotifyServicos(ctx context.Context)
}
