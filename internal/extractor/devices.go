package extractor

import "caseview/internal/model"

func classifyCall(reg *model.Registry, f *Facet) {
	reg.Calls.Add(&model.Call{
		ID:          f.NodeID,
		From:        model.NewRef(f.Ref(observable("from"))),
		To:          model.NewRef(f.Ref(observable("to"))),
		Application: model.NewRef(f.Ref(observable("application"))),
		StartTime:   f.Time(observable("startTime")),
		Duration:    f.Integer(observable("duration"), "-"),
	})
}

func classifyCalendar(reg *model.Registry, f *Facet) {
	reg.Calendars.Add(&model.Calendar{
		ID:          f.NodeID,
		Subject:     f.String(observable("subject"), ""),
		Recurrence:  f.String(observable("recurrence"), ""),
		StartTime:   f.Time(observable("startTime")),
		EndTime:     f.Time(observable("endTime")),
		EventStatus: f.String(observable("eventStatus"), ""),
	})
}

func classifyCellSite(reg *model.Registry, f *Facet) {
	reg.CellSites.Add(&model.CellSite{
		ID:               f.NodeID,
		CountryCode:      f.String(observable("cellSiteCountryCode"), ""),
		NetworkCode:      f.String(observable("cellSiteNetworkCode"), ""),
		LocationAreaCode: f.String(observable("cellSiteLocationAreaCode"), ""),
		Identifier:       f.String(observable("cellSiteIdentifier"), ""),
		Type:             f.String(observable("cellSiteType"), ""),
	})
}

func classifyBluetooth(reg *model.Registry, f *Facet) {
	reg.Bluetooths.Add(&model.Bluetooth{
		ID:      f.NodeID,
		Address: f.String(observable("addressValue"), ""),
	})
}

func classifyWirelessNetwork(reg *model.Registry, f *Facet) {
	reg.WirelessNetworks.Add(&model.WirelessNetwork{
		ID:          f.NodeID,
		SSID:        f.String(observable("ssid"), ""),
		BaseStation: f.String(observable("baseStation"), ""),
	})
}

// classifyCoordinate keeps coordinates as text; decimals are not reparsed.
func classifyCoordinate(reg *model.Registry, f *Facet) {
	reg.Coordinates.Add(&model.Coordinate{
		ID:        f.NodeID,
		Latitude:  f.Text("uco-location:latitude", ""),
		Longitude: f.Text("uco-location:longitude", ""),
		Altitude:  f.Text("uco-location:altitude", ""),
	})
}

func classifyEvent(reg *model.Registry, f *Facet) {
	reg.Events.Add(&model.Event{
		ID:          f.NodeID,
		CreatedTime: f.Time(observable("observableCreatedTime")),
		Type:        f.String(observable("eventType"), ""),
		Text:        f.String(observable("eventText"), ""),
	})
}
