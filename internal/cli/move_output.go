package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/alexanderramin/tabgroups/internal/cli/formatter"
	"github.com/alexanderramin/tabgroups/internal/domain"
	"github.com/alexanderramin/tabgroups/internal/reorder"
	"github.com/alexanderramin/tabgroups/internal/service"
)

// describeMove renders a one-line summary of a move result.
func describeMove(idx *reorder.Index, res *service.MoveResult) string {
	switch {
	case res.Cancelled:
		return formatter.Dim("Drop cancelled: nothing under the pointer.")
	case res.Plan.NoOp():
		return formatter.Dim("Nothing to do: already in place.")
	}
	where := "root"
	if res.Plan.NewParentID != nil {
		where = titleOf(idx, *res.Plan.NewParentID)
	}
	line := fmt.Sprintf("Moved %s → %s at position %d",
		formatter.Bold(titleOf(idx, res.Plan.NodeID)), where, res.Plan.Position)
	return line + formatter.Dim(fmt.Sprintf(" (%s)", formatter.Plural(len(res.Plan.Updates), "write")))
}

func printMoveResult(w io.Writer, idx *reorder.Index, res *service.MoveResult) {
	fmt.Fprintln(w, describeMove(idx, res))
}

// moveError labels rejections so the user can tell them apart from
// storage failures.
func moveError(err error) error {
	if errors.Is(err, reorder.ErrRejected) {
		return fmt.Errorf("move rejected: %w", err)
	}
	return err
}

// parentLabel renders a parent reference for tables.
func parentLabel(idx *reorder.Index, parentID *string) string {
	if parentID == nil {
		return formatter.Dim("root")
	}
	if !idx.Has(*parentID) {
		return formatter.StyleRed.Render(formatter.ShortID(*parentID) + " (missing)")
	}
	return titleOf(idx, *parentID)
}

func folderFlagTarget(folder string, root bool) (*string, error) {
	switch {
	case root && folder != "":
		return nil, fmt.Errorf("--folder and --root are mutually exclusive")
	case root:
		return nil, nil
	case folder == "":
		return nil, fmt.Errorf("one of --folder or --root is required")
	default:
		return domain.StringPtr(folder), nil
	}
}
