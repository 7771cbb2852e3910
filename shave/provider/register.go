package provider

import "github.com/shavecost/shavecost/shave"

func init() {
	shave.NewAnalyticProviderFunc = NewAnalyticProvider
	shave.NewPriorityProviderFunc = NewPriorityProvider
}
