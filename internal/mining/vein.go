package mining

import (
	"github.com/kestrelbot/pathkeeper/internal/goal"
	"github.com/kestrelbot/pathkeeper/internal/world"
)

// DetectVeins clusters positions by flood fill: two positions join the
// same cluster if their Euclidean distance is <= maxDistance. Order is
// deterministic (clusters appear in the order of their first position in
// positions, and members in breadth-first flood-fill order from it) so
// goal construction is reproducible.
func DetectVeins(positions []world.BlockPos, maxDistance float64) [][]world.BlockPos {
	n := len(positions)
	visited := make([]bool, n)
	var clusters [][]world.BlockPos

	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		var cluster []world.BlockPos
		queue := []int{i}
		visited[i] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			cluster = append(cluster, positions[cur])
			for j := 0; j < n; j++ {
				if visited[j] {
					continue
				}
				if positions[cur].Distance(positions[j]) <= maxDistance {
					visited[j] = true
					queue = append(queue, j)
				}
			}
		}
		clusters = append(clusters, cluster)
	}
	return clusters
}

// BuildGoal turns a set of ore clusters into a single Goal: clusters of
// size 1 become SingleBlock, clusters of size >=2 become OreVein, and
// when more than one goal results they are wrapped in a weighted
// PrioritisedMining per spec §4.5.
func BuildGoal(clusters [][]world.BlockPos, player world.BlockPos, maxReach float64) goal.Goal {
	var goals []goal.WeightedGoal
	for _, cluster := range clusters {
		var g goal.Goal
		var center world.BlockPos
		if len(cluster) == 1 {
			g = goal.SingleBlock{Target: cluster[0]}
			center = cluster[0]
		} else {
			vein := goal.NewOreVein(cluster, maxReach)
			g = vein
			center = vein.Center
		}
		weight := float64(len(cluster)) / (player.Distance(center) + 1)
		goals = append(goals, goal.WeightedGoal{Goal: g, Weight: weight})
	}
	if len(goals) == 1 {
		return goals[0].Goal
	}
	return goal.PrioritisedMining{Goals: goals}
}
