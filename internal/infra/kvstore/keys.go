package kvstore

// Storage keys. The db_ prefix marks shared content records, sys_
// marks per-client state.
const (
	KeyBusyData = "db_busy_data"
	KeyRequests = "db_requests"
	KeyDiary    = "db_diary"
	KeyFavs     = "db_favs"

	userActionPrefix = "sys_user_action:"
)

// UserActionKey scopes the action record to one client.
func UserActionKey(clientID string) string {
	return userActionPrefix + clientID
}
