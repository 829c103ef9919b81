package server

import "rocketbird/handler"

type Handlers struct {
	Auth     *handler.Auth
	Member   *handler.Member
	Point    *handler.Point
	Level    *handler.Level
	Checkin  *handler.Checkin
	Mall     *handler.Mall
	Referral *handler.Referral
	Feedback *handler.Feedback
	Admin    *handler.Admin
}
