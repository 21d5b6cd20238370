package trace

import (
	"log/slog"

	"lrucache/lru"
)

// Outcome records the answer to one get.
type Outcome struct {
	Op    Op
	Value string
	Hit   bool
}

func (o Outcome) String() string {
	if !o.Hit {
		return o.Op.String() + " -> MISS"
	}
	return o.Op.String() + " -> " + o.Value
}

// Result summarises a replay.
type Result struct {
	Gets      int
	Hits      int
	Misses    int
	Puts      int
	Evictions int
	Deletes   int
	Outcomes  []Outcome
}

// Replay runs ops against c in order. Events are logged at debug level to
// logger, or to slog.Default() when logger is nil.
func Replay(c *lru.Cache[string, string], ops []Op, logger *slog.Logger) Result {
	if logger == nil {
		logger = slog.Default()
	}
	var res Result
	for _, op := range ops {
		switch op.Kind {
		case Get:
			v, ok := c.Get(op.Key)
			res.Gets++
			if ok {
				res.Hits++
			} else {
				res.Misses++
			}
			res.Outcomes = append(res.Outcomes, Outcome{Op: op, Value: v, Hit: ok})
			logger.Debug("get", "line", op.Line, "key", op.Key, "hit", ok)

		case Put:
			var victim string
			if c.Len() == c.Cap() && !c.Contains(op.Key) {
				victim, _, _ = c.Oldest()
			}
			res.Puts++
			if c.Put(op.Key, op.Value) {
				res.Evictions++
				logger.Debug("evicted", "line", op.Line, "key", victim, "for", op.Key)
			}

		case Del:
			if c.Remove(op.Key) {
				res.Deletes++
				logger.Debug("deleted", "line", op.Line, "key", op.Key)
			}
		}
	}
	return res
}
