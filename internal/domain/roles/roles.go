package roles

type Role string

const (
	Student    Role = "student"
	Instructor Role = "instructor"
	Admin      Role = "admin"
)

// None means no role requirement (public).
const None Role = ""

var rank = map[Role]int{
	Student:    0,
	Instructor: 1,
	Admin:      2,
}

// Rank returns the position of r in the fixed hierarchy.
// Unknown role strings rank as student. Profile rows written before the
// role column had a constraint can carry anything; treating them as the
// lowest rank locks them out of nothing public and grants them nothing
// privileged.
func Rank(r Role) int {
	if n, ok := rank[r]; ok {
		return n
	}
	return rank[Student]
}

// Satisfies reports whether actual meets the required role.
// required == None always passes.
func Satisfies(actual, required Role) bool {
	if required == None {
		return true
	}
	return Rank(actual) >= Rank(required)
}

// Parse normalizes an arbitrary role string, mapping unknown values to
// student per the fail-safe-low policy above.
func Parse(s string) Role {
	r := Role(s)
	if _, ok := rank[r]; ok {
		return r
	}
	return Student
}
