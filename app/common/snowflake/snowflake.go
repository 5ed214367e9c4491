package snowflake

import (
	"hash/fnv"
	"os"
	"sync"

	bwsnowflake "github.com/bwmarrin/snowflake"
)

var (
	once sync.Once
	node *bwsnowflake.Node
)

// SetNodeID overrides the derived node ID (0-1023). Call once at bootstrap,
// before the first Next.
func SetNodeID(id int64) error {
	var err error
	once.Do(func() {})
	node, err = bwsnowflake.NewNode(id & 0x3FF)
	return err
}

// Next returns a new snowflake id. The node ID is derived from the hostname
// hash unless SetNodeID was called first.
func Next() int64 {
	once.Do(func() {
		if node != nil {
			return
		}
		host, _ := os.Hostname()
		h := fnv.New32a()
		_, _ = h.Write([]byte(host))
		n, err := bwsnowflake.NewNode(int64(h.Sum32()) & 0x3FF)
		if err != nil {
			n, _ = bwsnowflake.NewNode(1)
		}
		node = n
	})
	return node.Generate().Int64()
}
