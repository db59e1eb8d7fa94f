package board

import (
	"sort"
	"sync"
)

// sumKey identifies a memoized (target, count) subproblem.
type sumKey struct {
	target int
	count  int
}

// sumCache memoizes combination generation. The same sub-sums recur across
// many runs and search branches; without the cache the recursion is
// exponential in puzzle size. Guarded by a mutex so boards can be built
// concurrently.
type sumCache struct {
	mu     sync.Mutex
	all    map[sumKey][]Combination
	unique map[sumKey][]Combination
}

var sums = &sumCache{
	all:    make(map[sumKey][]Combination),
	unique: make(map[sumKey][]Combination),
}

// AllSums returns every ordered sequence of count distinct digits in [1,9]
// summing to target. An impossible pair yields an empty slice, never an
// error. Results are memoized; callers must not mutate the returned slices.
func AllSums(target, count int) []Combination {
	sums.mu.Lock()
	defer sums.mu.Unlock()
	return sums.allLocked(target, count)
}

func (c *sumCache) allLocked(target, count int) []Combination {
	key := sumKey{target, count}
	if cached, ok := c.all[key]; ok {
		return cached
	}

	var result []Combination
	switch {
	case count <= 0:
	case count == 1:
		if target >= int(MinDigit) && target <= int(MaxDigit) {
			result = []Combination{{Digit(target)}}
		}
	case count == 2:
		for x := 1; x <= target-2; x++ {
			rest := target - x
			if rest != x && x <= int(MaxDigit) && rest <= int(MaxDigit) {
				result = append(result, Combination{Digit(rest), Digit(x)})
			}
		}
	default:
		for x := 1; x <= target-2 && x <= int(MaxDigit); x++ {
			for _, sub := range c.allLocked(target-x, count-1) {
				if sub.contains(Digit(x)) {
					continue
				}
				extended := make(Combination, 0, len(sub)+1)
				extended = append(extended, sub...)
				extended = append(extended, Digit(x))
				result = append(result, extended)
			}
		}
	}

	c.all[key] = result
	return result
}

func (c Combination) contains(d Digit) bool {
	for _, x := range c {
		if x == d {
			return true
		}
	}
	return false
}

// UniqueSums returns the order-independent combinations for (target, count):
// each AllSums result sorted ascending, deduplicated, and the resulting set
// ordered lexicographically for deterministic iteration. This is the domain
// representation a Run stores.
func UniqueSums(target, count int) []Combination {
	sums.mu.Lock()
	defer sums.mu.Unlock()

	key := sumKey{target, count}
	if cached, ok := sums.unique[key]; ok {
		return cached
	}

	seen := make(map[string]bool)
	var result []Combination
	for _, combo := range sums.allLocked(target, count) {
		sorted := make(Combination, len(combo))
		copy(sorted, combo)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		k := comboKey(sorted)
		if !seen[k] {
			seen[k] = true
			result = append(result, sorted)
		}
	}
	sort.Slice(result, func(i, j int) bool { return comboLess(result[i], result[j]) })

	sums.unique[key] = result
	return result
}

func comboKey(c Combination) string {
	b := make([]byte, len(c))
	for i, d := range c {
		b[i] = byte('0' + d)
	}
	return string(b)
}

func comboLess(a, b Combination) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
