package aeries

// Aeries responses carry PascalCase keys and render dates as plain strings.
// Date fields are kept as strings here; installations differ in format
// ("YYYY-MM-DD" vs. the legacy "/Date(...)/" wrapper) and the library does
// not reinterpret them.

// SystemInfo represents the systeminfo endpoint response.
type SystemInfo struct {
	AeriesVersion          string   `json:"AeriesVersion"          yaml:"aeries_version"`
	DatabaseYear           string   `json:"DatabaseYear"           yaml:"database_year"`
	AvailableDatabaseYears []string `json:"AvailableDatabaseYears" yaml:"available_database_years"`
	LocalTimeZoneName      string   `json:"LocalTimeZoneName"      yaml:"local_time_zone_name"`
	CurrentDateTime        string   `json:"CurrentDateTime"        yaml:"current_date_time"`
}

// School represents one school in the district.
type School struct {
	SchoolCode         int    `json:"SchoolCode"         yaml:"school_code"`
	Name               string `json:"Name"               yaml:"name"`
	InactiveStatusCode string `json:"InactiveStatusCode" yaml:"inactive_status_code"`
	Address            string `json:"Address"            yaml:"address"`
	AddressCity        string `json:"AddressCity"        yaml:"address_city"`
	AddressState       string `json:"AddressState"       yaml:"address_state"`
	AddressZipCode     string `json:"AddressZipCode"     yaml:"address_zip_code"`
	PhoneNumber        string `json:"PhoneNumber"        yaml:"phone_number"`
	PrincipalName      string `json:"PrincipalName"      yaml:"principal_name"`
	PrincipalEmail     string `json:"PrincipalEmailAddress" yaml:"principal_email"`
	LowGradeLevel      int    `json:"LowGradeLevel"      yaml:"low_grade_level"`
	HighGradeLevel     int    `json:"HighGradeLevel"     yaml:"high_grade_level"`
	StateCountyID      string `json:"StateCountyID"      yaml:"state_county_id"`
	StateDistrictID    string `json:"StateDistrictID"    yaml:"state_district_id"`
	StateSchoolID      string `json:"StateSchoolID"      yaml:"state_school_id"`
	Terms              []Term `json:"Terms,omitempty"    yaml:"terms,omitempty"`
}

// Term represents one grading term at a school.
type Term struct {
	SchoolCode      int    `json:"SchoolCode"      yaml:"school_code"`
	TermCode        string `json:"TermCode"        yaml:"term_code"`
	TermDescription string `json:"TermDescription" yaml:"term_description"`
	StartDate       string `json:"StartDate"       yaml:"start_date"`
	EndDate         string `json:"EndDate"         yaml:"end_date"`
}

// CalendarDay represents one day of a school calendar.
type CalendarDay struct {
	SchoolCode   int    `json:"SchoolCode"   yaml:"school_code"`
	CalendarDate string `json:"CalendarDate" yaml:"calendar_date"`
	Holiday      bool   `json:"Holiday"      yaml:"holiday"`
	Track        string `json:"Track"        yaml:"track"`
}

// BellSchedulePeriod represents one period of a school bell schedule.
type BellSchedulePeriod struct {
	SchoolCode int    `json:"SchoolCode" yaml:"school_code"`
	Period     int    `json:"Period"     yaml:"period"`
	StartTime  string `json:"StartTime"  yaml:"start_time"`
	EndTime    string `json:"EndTime"    yaml:"end_time"`
}

// AbsenceCode represents one attendance code defined by a school.
type AbsenceCode struct {
	SchoolCode   int    `json:"SchoolCode"   yaml:"school_code"`
	Code         string `json:"Code"         yaml:"code"`
	Abbreviation string `json:"Abbreviation" yaml:"abbreviation"`
	Description  string `json:"Description"  yaml:"description"`
	Type         string `json:"Type"         yaml:"type"`
}

// Student represents one student demographics record. A student enrolled in
// more than one school has one record per school.
type Student struct {
	PermanentID         int    `json:"PermanentID"         yaml:"permanent_id"`
	StudentNumber       int    `json:"StudentNumber"       yaml:"student_number"`
	SchoolCode          int    `json:"SchoolCode"          yaml:"school_code"`
	StateStudentID      string `json:"StateStudentID"      yaml:"state_student_id"`
	FirstName           string `json:"FirstName"           yaml:"first_name"`
	MiddleName          string `json:"MiddleName"          yaml:"middle_name"`
	LastName            string `json:"LastName"            yaml:"last_name"`
	Grade               int    `json:"Grade"               yaml:"grade"`
	Gender              string `json:"Gender"              yaml:"gender"`
	Birthdate           string `json:"Birthdate"           yaml:"birthdate"`
	ParentGuardianName  string `json:"ParentGuardianName"  yaml:"parent_guardian_name"`
	HomeLanguageCode    string `json:"HomeLanguageCode"    yaml:"home_language_code"`
	EthnicityCode       string `json:"EthnicityCode"       yaml:"ethnicity_code"`
	MailingAddress      string `json:"MailingAddress"      yaml:"mailing_address"`
	MailingAddressCity  string `json:"MailingAddressCity"  yaml:"mailing_address_city"`
	MailingAddressState string `json:"MailingAddressState" yaml:"mailing_address_state"`
	MailingAddressZip   string `json:"MailingAddressZipCode" yaml:"mailing_address_zip"`
	HomePhone           string `json:"HomePhone"           yaml:"home_phone"`
	StudentEmailAddress string `json:"StudentEmailAddress" yaml:"student_email_address"`
	SchoolEnterDate     string `json:"SchoolEnterDate"     yaml:"school_enter_date"`
	SchoolLeaveDate     string `json:"SchoolLeaveDate"     yaml:"school_leave_date"`
	InactiveStatusCode  string `json:"InactiveStatusCode"  yaml:"inactive_status_code"`
}

// Contact represents one contact record attached to a student.
type Contact struct {
	PermanentID    int    `json:"PermanentID"    yaml:"permanent_id"`
	SequenceNumber int    `json:"SequenceNumber" yaml:"sequence_number"`
	MailingName    string `json:"MailingName"    yaml:"mailing_name"`
	FirstName      string `json:"FirstName"      yaml:"first_name"`
	LastName       string `json:"LastName"       yaml:"last_name"`
	RelationshipToStudentCode string `json:"RelationshipToStudentCode" yaml:"relationship_to_student_code"`
	Address        string `json:"Address"        yaml:"address"`
	AddressCity    string `json:"AddressCity"    yaml:"address_city"`
	AddressState   string `json:"AddressState"   yaml:"address_state"`
	AddressZipCode string `json:"AddressZipCode" yaml:"address_zip_code"`
	EmailAddress   string `json:"EmailAddress"   yaml:"email_address"`
	HomePhone      string `json:"HomePhone"      yaml:"home_phone"`
	WorkPhone      string `json:"WorkPhone"      yaml:"work_phone"`
	CellPhone      string `json:"CellPhone"      yaml:"cell_phone"`
	LivesWithStudent bool `json:"LivesWithStudentIndicator" yaml:"lives_with_student"`
}

// StudentProgram represents one special program a student participates in.
type StudentProgram struct {
	PermanentID            int    `json:"PermanentID"            yaml:"permanent_id"`
	ProgramCode            string `json:"ProgramCode"            yaml:"program_code"`
	ProgramDescription     string `json:"ProgramDescription"     yaml:"program_description"`
	EligibilityStartDate   string `json:"EligibilityStartDate"   yaml:"eligibility_start_date"`
	EligibilityEndDate     string `json:"EligibilityEndDate"     yaml:"eligibility_end_date"`
	ParticipationStartDate string `json:"ParticipationStartDate" yaml:"participation_start_date"`
	ParticipationEndDate   string `json:"ParticipationEndDate"   yaml:"participation_end_date"`
}

// TestScore represents one standardized test administration for a student.
type TestScore struct {
	PermanentID        int        `json:"PermanentID"        yaml:"permanent_id"`
	TestID             string     `json:"TestID"             yaml:"test_id"`
	TestDescription    string     `json:"TestDescription"    yaml:"test_description"`
	AdministrationDate string     `json:"AdministrationDate" yaml:"administration_date"`
	GradeLevel         int        `json:"GradeLevel"         yaml:"grade_level"`
	Parts              []TestPart `json:"Parts"              yaml:"parts"`
}

// TestPart represents a scored part of a test administration.
type TestPart struct {
	PartNumber      int         `json:"PartNumber"      yaml:"part_number"`
	PartDescription string      `json:"PartDescription" yaml:"part_description"`
	Scores          []TestValue `json:"Scores"          yaml:"scores"`
}

// TestValue is one score type/value pair within a test part.
type TestValue struct {
	Type  string  `json:"Type"  yaml:"type"`
	Score float64 `json:"Score" yaml:"score"`
}

// DisciplineIncident represents one discipline record for a student.
type DisciplineIncident struct {
	PermanentID     int    `json:"PermanentID"     yaml:"permanent_id"`
	SequenceNumber  int    `json:"SequenceNumber"  yaml:"sequence_number"`
	SchoolCode      int    `json:"SchoolCode"      yaml:"school_code"`
	IncidentDate    string `json:"IncidentDate"    yaml:"incident_date"`
	ViolationCode   string `json:"ViolationCode"   yaml:"violation_code"`
	DispositionCode string `json:"DispositionCode" yaml:"disposition_code"`
	Comment         string `json:"Comment"         yaml:"comment"`
}

// Fee represents one fee or fine charged to a student.
type Fee struct {
	PermanentID    int     `json:"PermanentID"    yaml:"permanent_id"`
	SequenceNumber int     `json:"SequenceNumber" yaml:"sequence_number"`
	SchoolCode     int     `json:"SchoolCode"     yaml:"school_code"`
	FeeCode        string  `json:"FeeCode"        yaml:"fee_code"`
	Description    string  `json:"Description"    yaml:"description"`
	AmountCharged  float64 `json:"AmountCharged"  yaml:"amount_charged"`
	AmountPaid     float64 `json:"AmountPaid"     yaml:"amount_paid"`
	DateCharged    string  `json:"DateCharged"    yaml:"date_charged"`
	DatePaid       string  `json:"DatePaid"       yaml:"date_paid"`
}

// StudentPicture carries one student photo as raw bytes.
type StudentPicture struct {
	PermanentID int    `json:"PermanentID" yaml:"permanent_id"`
	SchoolYear  string `json:"SchoolYear"  yaml:"school_year"`
	RawBinary   []byte `json:"RawBinary"   yaml:"raw_binary"`
}

// StudentGroup represents one student group defined at a school.
type StudentGroup struct {
	SchoolCode  int    `json:"SchoolCode"  yaml:"school_code"`
	GroupCode   string `json:"GroupCode"   yaml:"group_code"`
	Description string `json:"Description" yaml:"description"`
	StudentIDs  []int  `json:"StudentIDs"  yaml:"student_ids"`
}

// ClassAssignment represents one entry on a student's class schedule.
type ClassAssignment struct {
	PermanentID   int    `json:"PermanentID"   yaml:"permanent_id"`
	SchoolCode    int    `json:"SchoolCode"    yaml:"school_code"`
	SectionNumber int    `json:"SectionNumber" yaml:"section_number"`
	Period        int    `json:"Period"        yaml:"period"`
	CourseID      string `json:"CourseID"      yaml:"course_id"`
	CourseTitle   string `json:"CourseTitle"   yaml:"course_title"`
	TeacherNumber int    `json:"TeacherNumber" yaml:"teacher_number"`
	TeacherName   string `json:"TeacherName"   yaml:"teacher_name"`
	RoomNumber    string `json:"RoomNumber"    yaml:"room_number"`
}

// AttendanceSummary represents aggregate attendance for one student at one
// school.
type AttendanceSummary struct {
	PermanentID    int `json:"PermanentID"    yaml:"permanent_id"`
	SchoolCode     int `json:"SchoolCode"     yaml:"school_code"`
	DaysEnrolled   int `json:"DaysEnrolled"   yaml:"days_enrolled"`
	DaysPresent    int `json:"DaysPresent"    yaml:"days_present"`
	DaysAbsent     int `json:"DaysAbsent"     yaml:"days_absent"`
	DaysExcused    int `json:"DaysExcused"    yaml:"days_excused"`
	DaysUnexcused  int `json:"DaysUnexcused"  yaml:"days_unexcused"`
	DaysTardy      int `json:"DaysTardy"      yaml:"days_tardy"`
	DaysSuspension int `json:"DaysSuspension" yaml:"days_suspension"`
}

// AttendanceDetail represents one day of attendance for one student.
type AttendanceDetail struct {
	PermanentID  int                `json:"PermanentID"  yaml:"permanent_id"`
	SchoolCode   int                `json:"SchoolCode"   yaml:"school_code"`
	CalendarDate string             `json:"CalendarDate" yaml:"calendar_date"`
	AllDayCode   string             `json:"AllDayCode"   yaml:"all_day_code"`
	Periods      []AttendancePeriod `json:"Periods"      yaml:"periods"`
}

// AttendancePeriod is one period's attendance code within a day.
type AttendancePeriod struct {
	Period int    `json:"Period" yaml:"period"`
	Code   string `json:"Code"   yaml:"code"`
}

// Enrollment represents one year of a student's enrollment history.
type Enrollment struct {
	PermanentID    int    `json:"PermanentID"    yaml:"permanent_id"`
	SchoolCode     int    `json:"SchoolCode"     yaml:"school_code"`
	AcademicYear   int    `json:"AcademicYear"   yaml:"academic_year"`
	Grade          int    `json:"Grade"          yaml:"grade"`
	EntryDate      string `json:"EntryDate"      yaml:"entry_date"`
	LeaveDate      string `json:"LeaveDate"      yaml:"leave_date"`
	EntryCode      string `json:"EntryCode"      yaml:"entry_code"`
	ExitReasonCode string `json:"ExitReasonCode" yaml:"exit_reason_code"`
}

// Gradebook represents one teacher gradebook.
type Gradebook struct {
	GradebookNumber int    `json:"GradebookNumber" yaml:"gradebook_number"`
	Name            string `json:"Name"            yaml:"name"`
	SchoolCode      int    `json:"SchoolCode"      yaml:"school_code"`
	SectionNumber   int    `json:"SectionNumber"   yaml:"section_number"`
	Period          int    `json:"Period"          yaml:"period"`
	TermCode        string `json:"TermCode"        yaml:"term_code"`
	TeacherNumber   int    `json:"TeacherNumber"   yaml:"teacher_number"`
}

// Assignment represents one gradebook assignment.
type Assignment struct {
	GradebookNumber       int     `json:"GradebookNumber"       yaml:"gradebook_number"`
	AssignmentNumber      int     `json:"AssignmentNumber"      yaml:"assignment_number"`
	Description           string  `json:"Description"           yaml:"description"`
	Category              string  `json:"Category"              yaml:"category"`
	DateAssigned          string  `json:"DateAssigned"          yaml:"date_assigned"`
	DateDue               string  `json:"DateDue"               yaml:"date_due"`
	NumberCorrectPossible float64 `json:"NumberCorrectPossible" yaml:"number_correct_possible"`
	GradingCompleted      bool    `json:"GradingCompleted"      yaml:"grading_completed"`
}

// FinalMark represents one mark band defined on a gradebook.
type FinalMark struct {
	GradebookNumber int     `json:"GradebookNumber" yaml:"gradebook_number"`
	Mark            string  `json:"Mark"            yaml:"mark"`
	LowPercentage   float64 `json:"LowPercentage"   yaml:"low_percentage"`
	HighPercentage  float64 `json:"HighPercentage"  yaml:"high_percentage"`
}

// GPA represents one student's grade point averages at a school.
type GPA struct {
	PermanentID             int     `json:"PermanentID"             yaml:"permanent_id"`
	SchoolCode              int     `json:"SchoolCode"              yaml:"school_code"`
	CumulativeWeightedGPA   float64 `json:"CumulativeWeightedGPA"   yaml:"cumulative_weighted_gpa"`
	CumulativeUnweightedGPA float64 `json:"CumulativeUnweightedGPA" yaml:"cumulative_unweighted_gpa"`
	ClassRank               int     `json:"ClassRank"               yaml:"class_rank"`
	ClassSize               int     `json:"ClassSize"               yaml:"class_size"`
}

// Staff represents one district staff record.
type Staff struct {
	ID                 int    `json:"ID"                 yaml:"id"`
	FirstName          string `json:"FirstName"          yaml:"first_name"`
	MiddleName         string `json:"MiddleName"         yaml:"middle_name"`
	LastName           string `json:"LastName"           yaml:"last_name"`
	Title              string `json:"Title"              yaml:"title"`
	Gender             string `json:"Gender"             yaml:"gender"`
	EmailAddress       string `json:"EmailAddress"       yaml:"email_address"`
	PrimaryAeriesSchool int   `json:"PrimaryAeriesSchool" yaml:"primary_aeries_school"`
	HireDate           string `json:"HireDate"           yaml:"hire_date"`
	LeaveDate          string `json:"LeaveDate"          yaml:"leave_date"`
}

// Teacher represents one teacher record at a school.
type Teacher struct {
	SchoolCode    int    `json:"SchoolCode"    yaml:"school_code"`
	TeacherNumber int    `json:"TeacherNumber" yaml:"teacher_number"`
	DisplayName   string `json:"DisplayName"   yaml:"display_name"`
	FirstName     string `json:"FirstName"     yaml:"first_name"`
	LastName      string `json:"LastName"      yaml:"last_name"`
	RoomNumber    string `json:"RoomNumber"    yaml:"room_number"`
	EmailAddress  string `json:"EmailAddress"  yaml:"email_address"`
	StaffID       int    `json:"StaffID1"      yaml:"staff_id"`
}

// Section represents one course section at a school.
type Section struct {
	SchoolCode            int    `json:"SchoolCode"            yaml:"school_code"`
	SectionNumber         int    `json:"SectionNumber"         yaml:"section_number"`
	CourseID              string `json:"CourseID"              yaml:"course_id"`
	Period                int    `json:"Period"                yaml:"period"`
	Semester              string `json:"Semester"              yaml:"semester"`
	RoomNumber            string `json:"RoomNumber"            yaml:"room_number"`
	TeacherNumber         int    `json:"TeacherNumber"         yaml:"teacher_number"`
	TotalStudentsEnrolled int    `json:"TotalStudentsEnrolled" yaml:"total_students_enrolled"`
	MaxStudents           int    `json:"MaxStudents"           yaml:"max_students"`
}

// RosterEntry represents one student on a section roster.
type RosterEntry struct {
	SchoolCode    int    `json:"SchoolCode"    yaml:"school_code"`
	SectionNumber int    `json:"SectionNumber" yaml:"section_number"`
	PermanentID   int    `json:"PermanentID"   yaml:"permanent_id"`
	StartDate     string `json:"StartDate"     yaml:"start_date"`
	StopDate      string `json:"StopDate"      yaml:"stop_date"`
}

// Course represents one entry in the district course catalogue.
type Course struct {
	ID                 string  `json:"ID"                 yaml:"id"`
	Title              string  `json:"Title"              yaml:"title"`
	LongDescription    string  `json:"LongDescription"    yaml:"long_description"`
	DepartmentCode     string  `json:"DepartmentCode"     yaml:"department_code"`
	SubjectArea1Code   string  `json:"SubjectArea1Code"   yaml:"subject_area_1_code"`
	CreditDefault      float64 `json:"CreditDefault"      yaml:"credit_default"`
	InactiveStatusCode string  `json:"InactiveStatusCode" yaml:"inactive_status_code"`
}
