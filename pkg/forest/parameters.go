package forest

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"
)

// Parameters configures tree induction and forest training.
//
// MaxDepth of 0 leaves depth unbounded; otherwise nodes at that depth (root
// is depth 0) become leaves.
type Parameters struct {
	MaxDepth          int `yaml:"max_depth" json:"max_depth" validate:"gte=0"`
	MinSamplesPerLeaf int `yaml:"min_samples_per_leaf" json:"min_samples_per_leaf" validate:"gte=0"`
	CandidatesPerNode int `yaml:"candidates_to_try_per_node" json:"candidates_to_try_per_node" validate:"gte=1"`
	SamplesPerTree    int `yaml:"samples_per_tree" json:"samples_per_tree" validate:"gte=0"`
	NumberOfTrees     int `yaml:"number_of_trees" json:"number_of_trees" validate:"gte=0"`
}

func DefaultParameters() Parameters {
	return Parameters{
		MaxDepth:          0,
		MinSamplesPerLeaf: 1,
		CandidatesPerNode: 16,
		SamplesPerTree:    256,
		NumberOfTrees:     30,
	}
}

var validate = validator.New()

// Validate checks the dataset independent bounds.
func (p Parameters) Validate() error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidParameters, err)
	}
	var all error
	for _, fe := range verrs {
		all = multierr.Append(all, fmt.Errorf("%w: %s must be %s %s, got %v",
			ErrInvalidParameters, fe.Field(), fe.Tag(), fe.Param(), fe.Value()))
	}
	return all
}

func (p Parameters) validateTree(n int) error {
	err := p.Validate()
	if n == 0 {
		err = multierr.Append(err, ErrEmptyData)
	}
	return err
}

func (p Parameters) validateForest(n int) error {
	err := p.validateTree(n)
	if p.NumberOfTrees < 1 {
		err = multierr.Append(err, fmt.Errorf("%w: NumberOfTrees must be at least 1, got %d", ErrInvalidParameters, p.NumberOfTrees))
	}
	if p.SamplesPerTree < 1 || p.SamplesPerTree > n {
		err = multierr.Append(err, fmt.Errorf("%w: SamplesPerTree must be in [1, %d], got %d", ErrInvalidParameters, n, p.SamplesPerTree))
	}
	return err
}
