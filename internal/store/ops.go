package store

// Op names a stored routine the backing database exposes. The gateway only
// executes operations registered here; free-form SQL never crosses this
// boundary.
type Op string

const (
	OpGetAnnouncements      Op = "get_announcements"
	OpGetAnnouncement       Op = "get_announcement"
	OpPostAnnouncement      Op = "post_announcement"
	OpEditAnnouncement      Op = "edit_announcement"
	OpGetUsername           Op = "get_username"
	OpGetUserCredentials    Op = "get_user_credentials"
	OpRegisterUser          Op = "register_user"
	OpResetUserPassword     Op = "reset_user_password"
	OpGetPrayerTimesFile    Op = "get_prayer_times_file"
	OpUpdatePrayerTimesFile Op = "update_prayer_times_file"
	OpGetEvents             Op = "get_events"
	OpGetEvent              Op = "get_event"
	OpUpsertEvent           Op = "upsert_event"
	OpDeleteEvent           Op = "delete_event"
	OpGetImamQuestions      Op = "get_imam_questions"
	OpGetImamQuestion       Op = "get_imam_question"
	OpSubmitImamQuestion    Op = "submit_imam_question"
	OpAnswerImamQuestion    Op = "answer_imam_question"
	OpDeleteImamQuestion    Op = "delete_imam_question"
)

// routines maps each operation to its invocation text. The placeholder order
// is the reviewable contract between the per-operation parameter structs and
// the routine signatures in the migrations.
var routines = map[Op]string{
	OpGetAnnouncements:      `SELECT * FROM get_announcements()`,
	OpGetAnnouncement:       `SELECT * FROM get_announcement($1)`,
	OpPostAnnouncement:      `CALL post_announcement($1, $2, $3)`,
	OpEditAnnouncement:      `CALL edit_announcement($1, $2, $3, $4)`,
	OpGetUsername:           `SELECT get_username($1)`,
	OpGetUserCredentials:    `SELECT * FROM get_user_credentials($1)`,
	OpRegisterUser:          `CALL register_user($1, $2, $3, $4, $5, $6)`,
	OpResetUserPassword:     `CALL reset_user_password($1, $2)`,
	OpGetPrayerTimesFile:    `SELECT * FROM get_prayer_times_file()`,
	OpUpdatePrayerTimesFile: `CALL update_prayer_times_file($1)`,
	OpGetEvents:             `SELECT * FROM get_events()`,
	OpGetEvent:              `SELECT * FROM get_event($1)`,
	OpUpsertEvent:           `CALL upsert_event($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
	OpDeleteEvent:           `CALL delete_event($1)`,
	OpGetImamQuestions:      `SELECT * FROM get_imam_questions($1, $2, $3)`,
	OpGetImamQuestion:       `SELECT * FROM get_imam_question($1)`,
	OpSubmitImamQuestion:    `CALL submit_imam_question($1, $2, $3, $4)`,
	OpAnswerImamQuestion:    `CALL answer_imam_question($1, $2, $3, $4)`,
	OpDeleteImamQuestion:    `CALL delete_imam_question($1)`,
}

func invocation(op Op) (string, error) {
	text, ok := routines[op]
	if !ok {
		return "", &Error{Op: op, Err: ErrUnknownOp}
	}
	return text, nil
}
