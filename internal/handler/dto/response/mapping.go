package response

import (
	"roomescape/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

func copyView[R any](src any) (R, error) {
	var res R
	if err := copier.Copy(&res, src); err != nil {
		return res, errs.Wrapf(err, "failed to map %T to response", src)
	}
	return res, nil
}

func mapAll[V, R any](vs []V, fn func(V) (R, error)) ([]R, error) {
	res := make([]R, 0, len(vs))
	for _, v := range vs {
		r, err := fn(v)
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, nil
}
