package inspect

import (
	"fmt"

	"github.com/dtnitsch/tweet-corpus/pkg/db"
	"github.com/urfave/cli/v2"
)

// InspectAction prints the most frequent words of a persisted run. Without a
// --language flag it lists the languages the run contains.
func InspectAction(c *cli.Context) error {
	database, err := db.Open(c.String("db"))
	if err != nil {
		return err
	}
	defer database.Close()

	runID := c.Int64("run")
	if runID == 0 {
		runID, err = database.LatestRunID()
		if err != nil {
			return err
		}
	}

	lang := c.String("language")
	if lang == "" {
		languages, err := database.Languages(runID)
		if err != nil {
			return err
		}
		for _, l := range languages {
			fmt.Println(l)
		}
		return nil
	}

	top, err := database.TopWords(runID, lang, c.Int("top"))
	if err != nil {
		return err
	}
	for _, wc := range top {
		fmt.Printf("%s %d\n", wc.Word, wc.Count)
	}
	return nil
}
