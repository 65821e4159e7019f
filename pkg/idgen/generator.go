package idgen

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/snowflake"
)

// Generator hands out unique search identifiers.
type Generator interface {
	NewSearchID() string
}

// SnowflakeGenerator implements Generator using Twitter Snowflake.
type SnowflakeGenerator struct {
	node *snowflake.Node
	mu   sync.Mutex
}

// NewSnowflakeGenerator initializes a new ID generator.
// nodeID must be unique per server instance (0-1023) to prevent collisions.
func NewSnowflakeGenerator(nodeID int64) (*SnowflakeGenerator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to create snowflake node: %w", err)
	}

	return &SnowflakeGenerator{
		node: node,
	}, nil
}

// NewSearchID returns the next id in base58, short enough for log lines and URLs.
func (g *SnowflakeGenerator) NewSearchID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.node.Generate().Base58()
}
