package domain

// Technician is a staff member who handles tickets and maintenance work.
// Workload counts the technician's tickets currently in a counting status.
type Technician struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Speciality string `json:"speciality"`
	Workload   int    `json:"workload"`
}
