// Package database is the facade the driver talks to: it owns the graph,
// builds it from loaded records and runs the three searches with logging
// and metrics around them.
package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/katalvlaran/socialgraph/bfs"
	"github.com/katalvlaran/socialgraph/builder"
	"github.com/katalvlaran/socialgraph/core"
	"github.com/katalvlaran/socialgraph/dfs"
	"github.com/katalvlaran/socialgraph/frontier"
)

// ErrNotBuilt is returned by searches before BuildGraph succeeded.
var ErrNotBuilt = errors.New("database: graph not built")

// Algorithm label values.
const (
	AlgorithmBFS      = "bfs"
	AlgorithmIDDFS    = "iddfs"
	AlgorithmFrontier = "frontier"
)

// Database owns one core.Graph.
type Database struct {
	graph       *core.Graph
	logger      *zap.Logger
	registerer  prometheus.Registerer
	metrics     *metrics
	bopts       []builder.BuilderOption
	randomEdges int
}

// Option configures a Database.
type Option func(*Database)

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("database: WithLogger(nil)")
	}
	return func(db *Database) {
		db.logger = l
	}
}

// WithRegisterer registers the database collectors with reg.
// Without it the collectors exist but are not exported.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(db *Database) {
		db.registerer = reg
	}
}

// WithBuilderOptions forwards options to every builder run.
func WithBuilderOptions(opts ...builder.BuilderOption) Option {
	return func(db *Database) {
		db.bopts = append(db.bopts, opts...)
	}
}

// WithRandomConnections adds n random connection attempts after group
// wiring. Requires builder.WithSeed or builder.WithRand via WithBuilderOptions.
func WithRandomConnections(n int) Option {
	return func(db *Database) {
		db.randomEdges = n
	}
}

// New returns an empty Database.
func New(opts ...Option) (*Database, error) {
	db := &Database{
		logger:  zap.NewNop(),
		metrics: newMetrics(),
	}
	for _, opt := range opts {
		opt(db)
	}
	if db.registerer != nil {
		if err := db.metrics.register(db.registerer); err != nil {
			return nil, fmt.Errorf("database: register metrics: %w", err)
		}
	}

	return db, nil
}

// Graph returns the current graph, or nil before the first build.
func (db *Database) Graph() *core.Graph { return db.graph }

// BuildGraph replaces the graph with one ingested from members and groups,
// then wires connections. Calling it again with the same records produces
// the same graph.
func (db *Database) BuildGraph(members []builder.LoadedMember, groups []builder.LoadedGroup) error {
	start := time.Now()
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithCapacity(len(members), len(groups))},
		db.bopts,
		builder.Ingest(members, groups),
	)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err = db.connect(g); err != nil {
		return err
	}
	db.graph = g
	db.recordBuild(start)

	return nil
}

// Rebuild clears every connection of the current graph and wires it again.
func (db *Database) Rebuild() error {
	if db.graph == nil {
		return ErrNotBuilt
	}
	start := time.Now()
	db.graph.ClearConnections()
	db.graph.ResetTraversalState()
	if err := db.connect(db.graph); err != nil {
		return err
	}
	db.recordBuild(start)

	return nil
}

func (db *Database) connect(g *core.Graph) error {
	cons := []builder.Constructor{builder.ConnectGroups()}
	if db.randomEdges > 0 {
		cons = append(cons, builder.RandomConnections(db.randomEdges))
	}
	if err := builder.Apply(g, db.bopts, cons...); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	return nil
}

func (db *Database) recordBuild(start time.Time) {
	st := db.graph.Stats()
	db.metrics.builds.Inc()
	db.metrics.members.Set(float64(st.Members))
	db.metrics.connections.Set(float64(st.Connections))
	db.logger.Info("graph built",
		zap.Int("members", st.Members),
		zap.Int("groups", st.Groups),
		zap.Int("connections", st.Connections),
		zap.Int("isolated", st.Isolated),
		zap.Int("random_attempts", db.randomEdges),
		zap.Duration("took", time.Since(start)),
	)
}

// ResetTraversalState clears the scratch state left by the previous search.
func (db *Database) ResetTraversalState() {
	if db.graph != nil {
		db.graph.ResetTraversalState()
	}
}

// SafeBound returns dfs.SafeBound for the current graph.
func (db *Database) SafeBound() int { return dfs.SafeBound(db.graph) }

// FindReachableTree runs breadth-first search from root.
func (db *Database) FindReachableTree(ctx context.Context, root uint64) (*bfs.Tree, error) {
	if db.graph == nil {
		return nil, ErrNotBuilt
	}
	start := time.Now()
	tree, err := bfs.FindReachableTree(db.graph, root, bfs.WithContext(ctx))
	if err != nil {
		db.metrics.observe(AlgorithmBFS, outcomeError, time.Since(start).Seconds())
		return nil, err
	}
	db.metrics.observe(AlgorithmBFS, outcomeFound, time.Since(start).Seconds())
	db.logger.Debug("bfs finished",
		zap.Uint64("root", root),
		zap.Int("reached", len(tree.Order)),
	)

	return tree, nil
}

// FindPathBounded runs iterative deepening from root to target.
func (db *Database) FindPathBounded(ctx context.Context, root, target uint64, maxBound int) (*dfs.PathResult, error) {
	if db.graph == nil {
		return nil, ErrNotBuilt
	}
	start := time.Now()
	res, err := dfs.FindPathBounded(db.graph, root, target, maxBound, dfs.WithContext(ctx))
	if err != nil {
		db.metrics.observe(AlgorithmIDDFS, outcomeError, time.Since(start).Seconds())
		return nil, err
	}
	outcome := outcomeNotFound
	if res.Found {
		outcome = outcomeFound
	}
	db.metrics.observe(AlgorithmIDDFS, outcome, time.Since(start).Seconds())
	db.logger.Debug("iddfs finished",
		zap.Uint64("root", root),
		zap.Uint64("target", target),
		zap.Bool("found", res.Found),
		zap.Int("bound", res.Bound),
		zap.Int("expanded", res.Expanded),
	)

	return res, nil
}

// GrowFrontier grows the weighted tree from root.
func (db *Database) GrowFrontier(ctx context.Context, root uint64) (*frontier.Result, error) {
	if db.graph == nil {
		return nil, ErrNotBuilt
	}
	start := time.Now()
	res, err := frontier.GrowFrontier(db.graph, root, frontier.WithContext(ctx))
	if err != nil {
		db.metrics.observe(AlgorithmFrontier, outcomeError, time.Since(start).Seconds())
		return nil, err
	}
	db.metrics.observe(AlgorithmFrontier, outcomeFound, time.Since(start).Seconds())
	db.logger.Debug("frontier finished",
		zap.Uint64("root", root),
		zap.Int("reached", len(res.Order)+1),
		zap.Float64("weight", res.TotalWeight),
	)

	return res, nil
}

// DumpConnections renders one member's connection table.
func (db *Database) DumpConnections(id uint64) (string, error) {
	if db.graph == nil {
		return "", ErrNotBuilt
	}

	return db.graph.DumpConnections(id)
}

// DumpAll renders every member's table in load order.
func (db *Database) DumpAll() ([]string, error) {
	if db.graph == nil {
		return nil, ErrNotBuilt
	}
	out := make([]string, 0, db.graph.MemberCount())
	for _, m := range db.graph.Members() {
		line, err := db.graph.DumpConnections(m.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, line)
	}

	return out, nil
}

// Stats reports graph counts; zero before the first build.
func (db *Database) Stats() core.Stats {
	if db.graph == nil {
		return core.Stats{}
	}

	return db.graph.Stats()
}

// FormatPath renders a path of member IDs with member names.
func (db *Database) FormatPath(path []uint64) (string, error) {
	if db.graph == nil {
		return "", ErrNotBuilt
	}

	return db.graph.FormatPath(path)
}
