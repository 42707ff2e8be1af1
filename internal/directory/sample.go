package directory

// SampleContacts returns the fixtures written by `directory seed`.
func SampleContacts() []Contact {
	return []Contact{
		{ID: 1, Name: "Amina Njoroge", Phone: "+254700100200", Email: "amina@example.com"},
		{ID: 2, Name: "Brian Otieno", Phone: "+254711222333"},
		{ID: 3, Name: "Chen Wei", Phone: "+254722333444", Email: "chen.wei@example.com"},
		{ID: 4, Name: "Dorcas Wanjiru", Email: "dorcas@example.com"},
		{ID: 5, Name: "Emeka Obi", Phone: "+2348035556667"},
	}
}

// SampleGroups returns the group fixtures written by `directory seed`.
func SampleGroups() []Group {
	return []Group{
		{ID: 1, Name: "Customers", Description: "Opted-in customers", MemberCount: 3},
		{ID: 2, Name: "Staff", Description: "Internal staff alerts", MemberCount: 2},
		{ID: 3, Name: "VIP", MemberCount: 1},
	}
}
