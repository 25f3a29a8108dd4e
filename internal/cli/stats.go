package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"talkgen/internal/loader"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show collection statistics",
		Run:   runStats,
	}

	RootCmd.AddCommand(cmd)
}

// collectionStats summarizes the loaded talk collection.
type collectionStats struct {
	Total    int            `json:"total"`
	Public   int            `json:"public"`
	ByStatus map[string]int `json:"by_status"`
	Tags     map[string]int `json:"tags"`
	Types    map[string]int `json:"types"`
}

func runStats(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		exitErr("load config", err)
	}

	talks, err := loader.Load(cfg.CSVPath)
	if err != nil {
		exitErr("load talks", err)
	}

	stats := collectionStats{
		Total:    len(talks),
		ByStatus: map[string]int{},
		Tags:     map[string]int{},
		Types:    map[string]int{},
	}
	for _, t := range talks {
		if t.IsPublic() {
			stats.Public++
		}
		if t.Status != "" {
			stats.ByStatus[t.Status]++
		}
		for _, tag := range t.Tags {
			stats.Tags[tag]++
		}
		if t.Type != "" {
			stats.Types[t.Type]++
		}
	}

	b, _ := json.MarshalIndent(stats, "", "  ")
	fmt.Println(string(b))
}
