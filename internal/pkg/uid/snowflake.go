package uid

import "github.com/bwmarrin/snowflake"

// NumberID generates unique int64 identifiers.
type NumberID interface {
	// Generate returns a new unique int64 ID.
	Generate() int64
}

// Snowflake generates time-ordered int64 IDs using the snowflake scheme.
type Snowflake struct {
	node *snowflake.Node
}

// NewSnowflake creates a Snowflake generator for the given node number.
func NewSnowflake(nodeID int64) (*Snowflake, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, err
	}

	return &Snowflake{node: node}, nil
}

// Generate returns a new unique int64 ID.
func (s *Snowflake) Generate() int64 {
	return s.node.Generate().Int64()
}
