package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"campus-server/db"
	"campus-server/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListMyStudentsHandlerEmptyBranches(t *testing.T) {
	store := newStubStore()
	a := NewApiHandler(store, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/my-students?teaching_branches=&teaching_semesters=4", nil)
	rr := httptest.NewRecorder()

	a.ListMyStudentsHandler(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data":[]}`, rr.Body.String())
	assert.False(t, store.listStudentsCalled, "empty input must short-circuit without querying the store")
}

func TestListMyStudentsHandler(t *testing.T) {
	store := newStubStore()
	store.students = []*db.User{
		{Id: "u1", Email: "alice@rjit.com", Name: "Alice", Role: "student", Branch: strPtr("CSE"), Semester: strPtr("4")},
	}
	a := NewApiHandler(store, nil)

	req := httptest.NewRequest(http.MethodGet, `/api/my-students?teaching_branches=["CSE","ECE"]&teaching_semesters=4,6`, nil)
	rr := httptest.NewRecorder()

	a.ListMyStudentsHandler(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, store.listStudentsCalled)

	var resp shared.ListStudentsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Alice", resp.Data[0].Name)
	assert.NotContains(t, rr.Body.String(), "password")
}
