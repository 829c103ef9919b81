//go:build wireinject

package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewMembers,
	NewPoint,
	NewLevels,
	NewCheckin,
	NewProducts,
	NewExchangeOrders,
	NewReferrals,
	NewFeedbacks,
	NewAdmins,
)
