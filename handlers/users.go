package handlers

import (
	"log"
	"net/http"

	"campus-server/shared"
)

// ListMyStudentsHandler returns the student-role users covered by a teacher's
// branch and semester assignments. Either list being empty means no students
// can match, so the store isn't queried at all.
func (a *ApiHandler) ListMyStudentsHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for ListMyStudentsHandler")

	query := r.URL.Query()
	branches := shared.ParseMultiValue(query.Get("teaching_branches"))
	semesters := shared.ParseMultiValue(query.Get("teaching_semesters"))

	if len(branches) == 0 || len(semesters) == 0 {
		writeJson(w, shared.ListStudentsResponse{Data: []*shared.User{}})
		return
	}

	students, err := a.Store.ListStudents(r.Context(), branches, semesters)
	if err != nil {
		log.Printf("Error listing students: %v\n", err)
		http.Error(w, "Error listing students: "+err.Error(), http.StatusInternalServerError)
		return
	}

	apiStudents := make([]*shared.User, 0, len(students))
	for _, student := range students {
		apiStudents = append(apiStudents, student.ToApi())
	}

	log.Println("Successfully processed request for ListMyStudentsHandler")

	writeJson(w, shared.ListStudentsResponse{Data: apiStudents})
}
