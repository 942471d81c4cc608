package dbg

import (
	"fmt"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary keys into random readable names. A Namer never
// forgets a key, but generates the names lazily, so it's not a problem unless
// you're actually naming things. Shapes read without a name get one from here,
// which makes reports and drawings much easier to follow than "polygon 17".

func init() {
	// Since the names are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

// Give up on fresh names after this many collisions, and number them instead
const maxAttempts = 100

// Namer hands out names that are unique within the namer. It is safe for
// concurrent use.
type Namer struct {
	mu   sync.Mutex
	memo map[interface{}]string
	used map[string]bool
}

func NewNamer() *Namer {
	return &Namer{
		memo: make(map[interface{}]string),
		used: make(map[string]bool),
	}
}

// Reserve marks a name as taken, so that Name never generates it.
func (n *Namer) Reserve(name string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.used[name] = true
}

// Name returns the name for key, making one up the first time the key is seen.
// Keys must be comparable.
func (n *Namer) Name(key interface{}) string {
	if key == nil {
		return "Ø"
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if r, ok := n.memo[key]; ok {
		return r
	}
	r := n.fresh()
	n.memo[key] = r
	n.used[r] = true
	return r
}

func (n *Namer) fresh() string {
	var r string
	for i := 0; i < maxAttempts; i++ {
		r = fmt.Sprintf("%s%s", title(petname.Adjective()), title(petname.Name()))
		if !n.used[r] {
			return r
		}
	}
	base := r
	for i := 2; ; i++ {
		r = fmt.Sprintf("%s%d", base, i)
		if !n.used[r] {
			return r
		}
	}
}

func title(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
