package system

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
)

// SnowflakeIDs issues time-ordered int64 identifiers that stay unique when
// several records are created within the same millisecond.
type SnowflakeIDs struct {
	node *snowflake.Node
}

func NewSnowflakeIDs(node int64) (*SnowflakeIDs, error) {
	n, err := snowflake.NewNode(node)
	if err != nil {
		return nil, fmt.Errorf("snowflake node %d: %w", node, err)
	}
	return &SnowflakeIDs{node: n}, nil
}

func (g *SnowflakeIDs) NextID() int64 {
	return g.node.Generate().Int64()
}

// UUIDOpIDs issues sync operation identifiers.
type UUIDOpIDs struct{}

func (UUIDOpIDs) NewOpID() string {
	return uuid.NewString()
}
