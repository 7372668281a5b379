package parser

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"github.com/tidwall/sjson"

	"git.lost.host/meutraa/beatstat/internal/validate"
)

// WriteSanitized removes the reported notes from the original replay
// document, leaving every other field as it was.
func WriteSanitized(data []byte, report validate.Report) ([]byte, error) {
	indices := make([]int, 0, len(report.Removed))
	for _, r := range report.Removed {
		indices = append(indices, r.Index)
	}
	// Delete from the back so earlier indices stay valid.
	sort.Sort(sort.Reverse(sort.IntSlice(indices)))

	out := data
	for _, i := range indices {
		var err error
		out, err = sjson.DeleteBytes(out, fmt.Sprintf("notes.%d", i))
		if nil != err {
			return nil, errors.Wrapf(err, "unable to delete notes.%d", i)
		}
	}
	return out, nil
}
