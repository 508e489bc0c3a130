//go:build e2e

package schedule_test

import (
	"net/http"
	"testing"
	"time"

	"folio-api/internal/handler/dto/request"
	"folio-api/internal/handler/dto/response"
	"folio-api/tests/common/authtest"
	"folio-api/tests/common/httptest"
	"folio-api/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	busyURL         = "/api/schedule/busy"
	calendarURL     = "/api/schedule/calendar"
	pickerURL       = "/api/schedule/picker"
	pickerClickURL  = "/api/schedule/picker/click"
	pickerHoverURL  = "/api/schedule/picker/hover"
	pickerSlotURL   = "/api/schedule/picker/slot"
	availabilityURL = "/api/availability"
)

type scheduleSuite struct {
	e2e.SharedSuite
}

func TestScheduleSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(scheduleSuite))
}

// waits out the checker debounce before reading availability
func (s *scheduleSuite) waitDebounce() {
	time.Sleep(s.Config.Schedule.DebounceInterval * 5)
}

func (s *scheduleSuite) TestBusyToggle() {
	t := s.T()
	adminToken := authtest.LoginAdmin(t, s.Router, "admin", "password")

	s.Run("未認証のトグルは拒否される", func() {
		body := request.ToggleBusyRequest{Date: "2026-11-01", Slot: "09:00"}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, busyURL, body, nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})

	s.Run("トグルで枠が登録され公開ビューに反映される", func() {
		body := request.ToggleBusyRequest{Date: "2026-11-01", Slot: "09:00"}
		var day response.DaySlotsResponse
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, busyURL, body, nil, adminToken)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &day)
		require.Equal(s.T(), []string{"09:00"}, day.BusySlots)

		var public response.DaySlotsResponse
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, busyURL+"?date=2026-11-01", nil, nil, "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &public)
		require.Equal(s.T(), []string{"09:00"}, public.BusySlots)
		require.Len(s.T(), public.AllSlots, 13)
	})

	s.Run("再トグルで枠が解除される", func() {
		body := request.ToggleBusyRequest{Date: "2026-11-01", Slot: "09:00"}
		var day response.DaySlotsResponse
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, busyURL, body, nil, adminToken)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &day)
		require.Empty(s.T(), day.BusySlots)
	})

	s.Run("不正な日付は400", func() {
		body := request.ToggleBusyRequest{Date: "11/01/2026", Slot: "09:00"}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, busyURL, body, nil, adminToken)
		require.Equal(s.T(), http.StatusBadRequest, w.Code)
	})

	s.Run("グリッド外のスロットは400", func() {
		body := request.ToggleBusyRequest{Date: "2026-11-01", Slot: "07:00"}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, busyURL, body, nil, adminToken)
		require.Equal(s.T(), http.StatusBadRequest, w.Code)
	})
}

func (s *scheduleSuite) TestPickerFlow() {
	t := s.T()

	// クライアントIDクッキーを先に確保してセッションを固定する
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, pickerURL, nil, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	cookies := httptest.ExtractCookies(w)
	require.NotEmpty(t, cookies)

	s.Run("1クリック目でアンカーされる", func() {
		body := request.PickerClickRequest{Date: "2026-11-10"}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, pickerClickURL, body, cookies, "")
		require.Equal(s.T(), http.StatusNoContent, w.Code)

		var st response.PickerStateResponse
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, pickerURL, nil, cookies, "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &st)
		require.True(s.T(), st.Anchored)
	})

	s.Run("ホバー中のカレンダーはプレビュー範囲を返す", func() {
		body := request.PickerClickRequest{Date: "2026-11-13"}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, pickerHoverURL, body, cookies, "")
		require.Equal(s.T(), http.StatusNoContent, w.Code)

		var cal response.CalendarResponse
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, calendarURL+"?month=2026-11", nil, cookies, "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &cal)
		require.Equal(s.T(), 2026, cal.Year)
		require.Len(s.T(), cal.Days, 30)

		require.True(s.T(), cal.Days[9].IsStart, "10日がアンカー")
		require.True(s.T(), cal.Days[12].IsEnd, "13日がホバー先")
		require.True(s.T(), cal.Days[10].InRange)
		require.True(s.T(), cal.Days[11].InRange)
	})

	s.Run("2クリック目で範囲が確定しチェックが走る", func() {
		body := request.PickerClickRequest{Date: "2026-11-12"}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, pickerClickURL, body, cookies, "")
		require.Equal(s.T(), http.StatusNoContent, w.Code)

		var st response.PickerStateResponse
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, pickerURL, nil, cookies, "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &st)
		require.False(s.T(), st.Anchored)
		require.Equal(s.T(), "2026-11-10", st.StartDate)
		require.Equal(s.T(), "2026-11-12", st.EndDate)

		s.waitDebounce()

		var avail response.AvailabilityResponse
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, availabilityURL, nil, cookies, "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &avail)
		require.Equal(s.T(), "available", avail.Status)
	})

	s.Run("キャンセルでアンカーだけが消える", func() {
		body := request.PickerClickRequest{Date: "2026-11-20"}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, pickerClickURL, body, cookies, "")
		require.Equal(s.T(), http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, pickerURL, nil, cookies, "")
		require.Equal(s.T(), http.StatusNoContent, w.Code)

		var st response.PickerStateResponse
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, pickerURL, nil, cookies, "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &st)
		require.False(s.T(), st.Anchored)
		require.Equal(s.T(), "2026-11-10", st.StartDate, "確定済みの範囲は残ること")
	})

	s.Run("グリッド外のスロット選択は400", func() {
		body := request.SlotSelectRequest{Slot: "23:00"}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, pickerSlotURL, body, cookies, "")
		require.Equal(s.T(), http.StatusBadRequest, w.Code)
	})
}

func (s *scheduleSuite) TestAvailabilityWindow() {
	t := s.T()

	w := httptest.PerformRequest(t, s.Router, http.MethodGet, availabilityURL, nil, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	cookies := httptest.ExtractCookies(w)

	s.Run("入力途中はidle", func() {
		body := request.AvailabilityWindowRequest{StartDate: "2026-12-01"}
		var avail response.AvailabilityResponse
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, availabilityURL+"/window", body, cookies, "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &avail)
		require.Equal(s.T(), "idle", avail.Status)
	})

	s.Run("完全な入力はcheckingを経てavailableになる", func() {
		body := request.AvailabilityWindowRequest{
			StartDate: "2026-12-01",
			StartTime: "10:00",
			EndTime:   "12:00",
		}
		var avail response.AvailabilityResponse
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, availabilityURL+"/window", body, cookies, "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &avail)
		require.Equal(s.T(), "checking", avail.Status)

		s.waitDebounce()

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, availabilityURL, nil, cookies, "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &avail)
		require.Equal(s.T(), "available", avail.Status)
	})

	s.Run("逆順の時刻は即invalid", func() {
		body := request.AvailabilityWindowRequest{
			StartDate: "2026-12-01",
			StartTime: "12:00",
			EndTime:   "10:00",
		}
		var avail response.AvailabilityResponse
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, availabilityURL+"/window", body, cookies, "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &avail)
		require.Equal(s.T(), "invalid", avail.Status)
		require.NotEmpty(s.T(), avail.Message)
	})

	s.Run("不正な日付形式は400", func() {
		body := request.AvailabilityWindowRequest{StartDate: "Dec 1st"}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, availabilityURL+"/window", body, cookies, "")
		require.Equal(s.T(), http.StatusBadRequest, w.Code)
	})
}
