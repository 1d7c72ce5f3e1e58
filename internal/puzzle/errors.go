package puzzle

import "errors"

// ErrInsufficientWords is returned by Synthesize when no candidate
// survives pre-processing, or when no attempt placed any word. Falling
// short of the per-size minimum word target is not an error.
var ErrInsufficientWords = errors.New("puzzle: insufficient words to build a grid")

// ErrNotFound is returned by Check and Hint when the record carries no
// answer table. The store reports unknown IDs with its own ErrNotFound.
var ErrNotFound = errors.New("puzzle: not found")

// ErrUnknownClue is returned by Hint when the requested clue number and
// orientation match no placed word.
var ErrUnknownClue = errors.New("puzzle: unknown clue")

// ErrBadRequest names a caller input error distinct from the above. No
// function in this package returns it; an empty or fully filtered
// candidate list is reported as ErrInsufficientWords.
var ErrBadRequest = errors.New("puzzle: bad request")
