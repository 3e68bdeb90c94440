package scaffold

import (
	"github.com/hw-tools/crategen/internal/pkg/scaffold/parttable"
	"github.com/hw-tools/crategen/internal/pkg/utils/errors"
)

// Crate is the scaffold of one family package.
type Crate struct {
	Family      string               // lowercased family prefix, also the output directory
	Devices     []string             // collected devices, sorted
	DocFeatures []string             // documentation features of the family
	Refs        parttable.FamilyRefs // part table records of all family devices
}

// Plan is the validated set of crates to generate, ordered by family.
// All lookups happen during planning, before any file is written.
type Plan struct {
	Crates []*Crate
}

// NewPlan resolves every collected family against the doc features table
// and the part table. Any failed lookup aborts the whole plan.
func NewPlan(group FamilyGroup, table parttable.Table) (*Plan, error) {
	plan := &Plan{}
	merged := errors.NewMultiError()

	for _, family := range group.Families() {
		devices := group.Devices(family)
		if len(devices) == 0 {
			merged.Append(errors.Errorf(`family "%s" has no devices`, family))
			continue
		}

		docFeatures, err := DocFeatures(family)
		if err != nil {
			merged.Append(err)
			continue
		}

		refs, err := table.Family(family)
		if err != nil {
			merged.Append(err)
			continue
		}

		// Every collected device must have a part table record.
		for _, device := range devices {
			if _, err := table.Device(family, device); err != nil {
				merged.Append(err)
			}
		}

		plan.Crates = append(plan.Crates, &Crate{
			Family:      family,
			Devices:     devices,
			DocFeatures: docFeatures,
			Refs:        refs,
		})
	}

	if err := merged.ErrorOrNil(); err != nil {
		return nil, err
	}
	return plan, nil
}

// Dirs lists the output directories, for the confirmation dialog.
func (p *Plan) Dirs() []string {
	dirs := make([]string, 0, len(p.Crates))
	for _, crate := range p.Crates {
		dirs = append(dirs, crate.Family+"/")
	}
	return dirs
}

// Empty reports whether the plan has nothing to generate.
func (p *Plan) Empty() bool {
	return len(p.Crates) == 0
}
