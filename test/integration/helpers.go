//go:build integration

package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/aeries-io/aeries/pkg/aeries"
)

// fakeDistrict serves a small but consistent Aeries dataset: one high school,
// two students, one section with a gradebook. Paths follow the live API.
type fakeDistrict struct {
	certificate string
}

func newFakeDistrict(certificate string) *fakeDistrict {
	return &fakeDistrict{certificate: certificate}
}

func (d *fakeDistrict) start() *httptest.Server {
	mux := http.NewServeMux()

	handle := func(pattern string, data any) {
		mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get(aeries.CertificateHeader) != d.certificate {
				w.WriteHeader(http.StatusUnauthorized)

				return
			}

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(data)
		})
	}

	handle("/api/v5/systeminfo/", aeries.SystemInfo{
		AeriesVersion: "16.0.1.20",
		DatabaseYear:  "2025-2026",
	})

	handle("/api/v5/schools/", []aeries.School{
		{SchoolCode: 990, Name: "Screaming Eagle High School", LowGradeLevel: 9, HighGradeLevel: 12},
	})

	handle("/api/v5/schools/990/students/", []aeries.Student{
		{PermanentID: 99400001, SchoolCode: 990, FirstName: "Allan", LastName: "Abbott", Grade: 11},
		{PermanentID: 99400002, SchoolCode: 990, FirstName: "Brenda", LastName: "Baker", Grade: 12},
	})

	handle("/api/v5/schools/990/students/99400001/", []aeries.Student{
		{PermanentID: 99400001, SchoolCode: 990, FirstName: "Allan", LastName: "Abbott", Grade: 11},
	})

	handle("/api/v5/schools/990/sections/", []aeries.Section{
		{SchoolCode: 990, SectionNumber: 44, CourseID: "0370", Period: 2, TeacherNumber: 601},
	})

	handle("/api/v5/schools/990/sections/44/gradebooks/", []aeries.Gradebook{
		{GradebookNumber: 4406570, Name: "Biology P2", SchoolCode: 990, SectionNumber: 44},
	})

	handle("/api/v5/gradebooks/4406570/assignments/", []aeries.Assignment{
		{GradebookNumber: 4406570, AssignmentNumber: 1, Description: "Cell structure lab"},
	})

	handle("/api/v5/schools/990/AttendanceHistory/summary/99400001/", []aeries.AttendanceSummary{
		{PermanentID: 99400001, SchoolCode: 990, DaysEnrolled: 180, DaysPresent: 172, DaysAbsent: 8},
	})

	return httptest.NewServer(mux)
}
