// Code generated by "stringer -type=Phase,Operation,NoticeLevel -linecomment"; DO NOT EDIT.

package signup

import "strconv"

func _() {
	// An "invalid array index" compiler error signifies that the constant values have changed.
	// Re-run the stringer command to generate them again.
	var x [1]struct{}
	_ = x[COLLECTING-0]
	_ = x[AWAITING_CONFIRMATION-1]
	_ = x[CONFIRMED-2]
	_ = x[CANCELLED-3]
}

const _Phase_name = "collectingawaiting_confirmationconfirmedcancelled"

var _Phase_index = [...]uint8{0, 10, 31, 40, 49}

func (i Phase) String() string {
	idx := int(i) - 0
	if i < 0 || idx >= len(_Phase_index)-1 {
		return "Phase(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _Phase_name[_Phase_index[idx]:_Phase_index[idx+1]]
}
func _() {
	// An "invalid array index" compiler error signifies that the constant values have changed.
	// Re-run the stringer command to generate them again.
	var x [1]struct{}
	_ = x[NO_OPERATION-0]
	_ = x[REGISTERING-1]
	_ = x[CONFIRMING-2]
	_ = x[RESENDING-3]
}

const _Operation_name = "idleregisteringconfirmingresending"

var _Operation_index = [...]uint8{0, 4, 15, 25, 34}

func (i Operation) String() string {
	idx := int(i) - 0
	if i < 0 || idx >= len(_Operation_index)-1 {
		return "Operation(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _Operation_name[_Operation_index[idx]:_Operation_index[idx+1]]
}
func _() {
	// An "invalid array index" compiler error signifies that the constant values have changed.
	// Re-run the stringer command to generate them again.
	var x [1]struct{}
	_ = x[INFO-0]
	_ = x[SUCCESS-1]
	_ = x[FAILURE-2]
}

const _NoticeLevel_name = "infosuccesserror"

var _NoticeLevel_index = [...]uint8{0, 4, 11, 16}

func (i NoticeLevel) String() string {
	idx := int(i) - 0
	if i < 0 || idx >= len(_NoticeLevel_index)-1 {
		return "NoticeLevel(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _NoticeLevel_name[_NoticeLevel_index[idx]:_NoticeLevel_index[idx+1]]
}
