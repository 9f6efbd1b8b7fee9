package ports

import "context"

// ActorResolver supplies the already-authenticated actor on whose behalf a
// mutation runs. The core never authenticates; it records the actor name on
// archive bundles and trusts the surrounding layer to have validated it.
type ActorResolver interface {
	CurrentActor(ctx context.Context) string
}
