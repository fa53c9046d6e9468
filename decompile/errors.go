package decompile

import (
	"errors"
	"fmt"
	"io"

	"github.com/joshuapare/scummkit/internal/format"
	"github.com/joshuapare/scummkit/pkg/types"
)

// classify wraps err into a *types.Error. Errors that already carry a kind
// pass through unchanged.
func classify(err error, disk uint8, offset int64, msg string) error {
	if err == nil {
		return nil
	}
	var te *types.Error
	if errors.As(err, &te) {
		return err
	}
	kind := types.ErrKindIO
	switch {
	case errors.Is(err, format.ErrSignatureMismatch):
		kind = types.ErrKindMissingBlock
	case errors.Is(err, format.ErrBoundary),
		errors.Is(err, format.ErrTrailingData),
		errors.Is(err, format.ErrLengthOverflow),
		errors.Is(err, format.ErrTruncated),
		errors.Is(err, io.ErrUnexpectedEOF):
		kind = types.ErrKindMalformed
	}
	return &types.Error{Kind: kind, Msg: msg, Disk: disk, Offset: offset, Err: err}
}

func tagTextError(id format.BlockID, disk uint8, offset int64) error {
	return &types.Error{
		Kind:   types.ErrKindTagText,
		Msg:    fmt.Sprintf("tag %s cannot be used in a path", id),
		Disk:   disk,
		Offset: offset,
	}
}
