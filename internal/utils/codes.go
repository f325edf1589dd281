package utils

import (
	"fmt"     // Error wrapping
	"strings" // String manipulation

	"github.com/bwmarrin/snowflake" // Snowflake ID generator
	"github.com/google/uuid"        // GUID generation
)

// CodeGenerator issues short unique department invite codes
type CodeGenerator struct {
	node *snowflake.Node // Snowflake node, safe for concurrent use
}

// NewCodeGenerator creates a generator for the given snowflake node (0-1023)
func NewCodeGenerator(nodeID int64) (*CodeGenerator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("snowflake node %d: %w", nodeID, err)
	}
	return &CodeGenerator{node: node}, nil
}

// DepartmentCode returns a new invite code, unique across nodes
func (g *CodeGenerator) DepartmentCode() string {
	return g.node.Generate().Base58() // 11 characters, time ordered
}

// NewToken returns a permanent bearer token for a newly registered user
func NewToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "") // 32 hex characters
}
