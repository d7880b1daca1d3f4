package generator

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// students flips is_active off and sets a graduation date only once credits
// reach the graduation threshold.
func (g *Generator) students() []Student {
	pools := g.cfg.Pools
	students := make([]Student, g.cfg.Counts.Students)
	for i := range students {
		id := int64(i + 1)
		first, last := g.provider.FirstName(), g.provider.LastName()
		enrolled := g.dateBetween(g.yearsAgo(4), g.today)
		credits := g.intBetween(0, pools.GraduationCredits)

		var graduation NullDate
		if credits >= pools.GraduationCredits {
			graduation = NullDate{Date: g.dateBetween(enrolled, g.today), Valid: true}
		}

		students[i] = Student{
			ID:             id,
			FirstName:      first,
			LastName:       last,
			Email:          emailLocal(first, last, id) + "@university.edu",
			DateOfBirth:    g.dateBetween(g.yearsAgo(25), g.yearsAgo(18)),
			EnrollmentDate: enrolled,
			Major:          g.pick(pools.Majors),
			GPA:            g.money(2.0, 4.0),
			CreditsEarned:  credits,
			GraduationDate: graduation,
			IsActive:       !graduation.Valid,
		}
	}
	return students
}

// enrollments are generated for active students only.
func (g *Generator) enrollments(students []Student, courseIDs []int64) ([]StudentEnrollment, error) {
	counts := g.cfg.Counts
	var enrollments []StudentEnrollment
	for _, s := range students {
		if !s.IsActive {
			continue
		}
		n := g.intBetween(counts.EnrollmentsMin, counts.EnrollmentsMax)
		for k := 0; k < n; k++ {
			course, err := g.pickID(courseIDs)
			if err != nil {
				return nil, fmt.Errorf("student %d enrollment: %w", s.ID, err)
			}

			var grade decimal.NullDecimal
			if !g.chance(g.cfg.NullGradeRate) {
				grade = decimal.NewNullDecimal(g.money(2.0, 4.0))
			}

			enrollments = append(enrollments, StudentEnrollment{
				ID:             int64(len(enrollments) + 1),
				StudentID:      s.ID,
				CourseID:       course,
				EnrollmentDate: g.dateBetween(s.EnrollmentDate, g.today),
				Grade:          grade,
				Status:         g.cfg.Pools.EnrollmentStatuses.Pick(g.rand),
			})
		}
	}
	return enrollments, nil
}
