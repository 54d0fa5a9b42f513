package entities

import "github.com/KirkDiggler/rpg-toolkit/core"

// Characters satisfy core.Entity so toolkit consumers can address them by
// ID and type.
var _ core.Entity = (*Character)(nil)
