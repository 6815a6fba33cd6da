package response

import (
	"reservation-engine/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

// Views and responses share field names; copier fills the response by name.
func copyFrom[T any](src any) (*T, error) {
	var dst T
	if err := copier.Copy(&dst, src); err != nil {
		return nil, errs.Wrap(err, "failed to map view to response")
	}
	return &dst, nil
}

func copyList[T any, S any](src []*S) ([]*T, error) {
	dst := make([]*T, 0, len(src))
	for _, s := range src {
		d, err := copyFrom[T](s)
		if err != nil {
			return nil, err
		}
		dst = append(dst, d)
	}
	return dst, nil
}
