package nasa

import (
	"fmt"
	"time"

	blackhole "github.com/MohnajibG/BlackHole"
	"github.com/MohnajibG/BlackHole/pkg/consts"
)

// ImageURL maps a feed item to its archive png. The archive is laid out
// by capture date, so the timestamp is decomposed into year/month/day
// path segments.
func ImageURL(base string, item blackhole.EpicItem, apiKey string) (string, error) {

	t, err := time.Parse(consts.EpicTimeFormat, item.Date)
	if err != nil {
		return "", fmt.Errorf("epic date %q: %w", item.Date, err)
	}

	u := fmt.Sprintf("%s/%s/png/%s.png", base, t.Format("2006/01/02"), item.Image)
	if apiKey != "" {
		u += "?" + consts.ParamApiKey + "=" + apiKey
	}

	return u, nil
}
