package ChainTable

import "github.com/g-m-twostay/go-tables/Tables"

type node[K any, V any] struct {
	e  Tables.Entry[K, V]
	nx *node[K, V]
}

func (n *node[K, V]) String() string {
	return "[" + n.e.String() + "]->"
}
