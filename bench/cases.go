package bench

import (
	"github.com/katalvlaran/lvgrasp/grasp"
	"github.com/katalvlaran/lvgrasp/localsearch"
	"github.com/katalvlaran/lvgrasp/qbf"
	"github.com/katalvlaran/lvgrasp/qbfpt"
)

// QBFCase wraps an unconstrained QBF instance.
func QBFCase(name string, inst *qbf.Instance, ls localsearch.Options) Case {
	return Case{
		Name: name,
		Size: inst.Size(),
		New: func() (grasp.Evaluator, grasp.Problem, error) {
			return qbf.New(inst, ls)
		},
	}
}

// QBFPTCase wraps a QBF instance under the generated prohibited triples.
func QBFPTCase(name string, inst *qbf.Instance, ls localsearch.Options) (Case, error) {
	triples, err := qbfpt.Generate(inst.Size())
	if err != nil {
		return Case{}, err
	}

	return Case{
		Name: name,
		Size: inst.Size(),
		New: func() (grasp.Evaluator, grasp.Problem, error) {
			eval, err := qbf.NewEvaluator(inst)
			if err != nil {
				return nil, nil, err
			}
			b, err := qbfpt.NewBinding(eval, triples, ls)
			if err != nil {
				return nil, nil, err
			}
			return eval, b, nil
		},
		Feasible: triples.Feasible,
	}, nil
}
