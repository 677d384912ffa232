package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/socialgraph/bfs"
	"github.com/katalvlaran/socialgraph/config"
)

func newBFSCmd(a *app) *cobra.Command {
	var root, target uint64
	cmd := &cobra.Command{
		Use:   "bfs",
		Short: "Fewest-hop path between two members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.db.ResetTraversalState()
			tree, err := a.db.FindReachableTree(cmd.Context(), root)
			if err != nil {
				return err
			}
			path, err := tree.PathTo(target)
			if errors.Is(err, bfs.ErrNoPath) {
				fmt.Fprintf(cmd.OutOrStdout(), "no path from %d to %d\n", root, target)
				return nil
			}
			if err != nil {
				return err
			}

			return a.printPath(cmd, path)
		},
	}
	cmd.Flags().Uint64Var(&root, "root", 0, "start member id")
	cmd.Flags().Uint64Var(&target, "target", 0, "destination member id")
	_ = cmd.MarkFlagRequired("root")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func newIDDFSCmd(a *app) *cobra.Command {
	var (
		root, target uint64
		maxBound     int
	)
	cmd := &cobra.Command{
		Use:   "iddfs",
		Short: "Iterative-deepening path search",
		Long: `Searches with depth bounds 0, 1, ... up to --max-bound. Without the flag the
configured max_bound is used; -1 selects member count - 1, which always
terminates with the right answer.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bound := a.cfg.MaxBound
			if cmd.Flags().Changed("max-bound") {
				bound = maxBound
			}
			if bound == config.AutoBound {
				bound = a.db.SafeBound()
			}

			a.db.ResetTraversalState()
			res, err := a.db.FindPathBounded(cmd.Context(), root, target, bound)
			if err != nil {
				return err
			}
			if !res.Found {
				fmt.Fprintf(cmd.OutOrStdout(), "no path from %d to %d within bound %d\n", root, target, bound)
				return nil
			}

			return a.printPath(cmd, res.Path)
		},
	}
	cmd.Flags().Uint64Var(&root, "root", 0, "start member id")
	cmd.Flags().Uint64Var(&target, "target", 0, "destination member id")
	cmd.Flags().IntVar(&maxBound, "max-bound", config.AutoBound, "deepest bound to try (-1: member count - 1)")
	_ = cmd.MarkFlagRequired("root")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func newGrowCmd(a *app) *cobra.Command {
	var root uint64
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Greedy weighted tree from a member",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.db.ResetTraversalState()
			res, err := a.db.GrowFrontier(cmd.Context(), root)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, e := range res.Edges {
				fmt.Fprintf(out, "%d -> %d via %d (%g)\n", e.From, e.To, e.Group, e.Weight)
			}
			fmt.Fprintf(out, "total weight: %g\n", res.TotalWeight)

			return nil
		},
	}
	cmd.Flags().Uint64Var(&root, "root", 0, "start member id")
	_ = cmd.MarkFlagRequired("root")

	return cmd
}

func newDumpCmd(a *app) *cobra.Command {
	var member uint64
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print connection tables as (id)->dst(group)...",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if cmd.Flags().Changed("member") {
				line, err := a.db.DumpConnections(member)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, line)
				return nil
			}
			lines, err := a.db.DumpAll()
			if err != nil {
				return err
			}
			for _, line := range lines {
				fmt.Fprintln(out, line)
			}

			return nil
		},
	}
	cmd.Flags().Uint64Var(&member, "member", 0, "only this member")

	return cmd
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print graph counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st := a.db.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "members: %d\ngroups: %d\nconnections: %d\nisolated: %d\n",
				st.Members, st.Groups, st.Connections, st.Isolated)

			return nil
		},
	}
}

// printPath writes the path as names (target first) and its hop count.
func (a *app) printPath(cmd *cobra.Command, path []uint64) error {
	line, err := a.db.FormatPath(path)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), line)
	fmt.Fprintf(cmd.OutOrStdout(), "hops: %d\n", len(path)-1)

	return nil
}
