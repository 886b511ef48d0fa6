package uispec

// View builders. Each is a pure function from the configured API base path
// (and route parameters) to a document; none of them touches the auth
// module, so UI specs stay available while it is down.

// addUserModal is shared by the dashboard and the users list.
func addUserModal(api string) *Modal {
	return &Modal{
		Type:  "Modal",
		Title: "Add New User",
		Size:  "md",
		Children: []Node{
			&Form{
				Type:       "Form",
				Endpoint:   api + "/users",
				Method:     "POST",
				SubmitText: "Create User",
				CancelText: "Cancel",
				Fields: []Node{
					&TextField{
						Type:        "TextField",
						Name:        "email",
						Label:       "Email",
						InputType:   "email",
						Required:    true,
						Placeholder: "user@example.com",
					},
					&TextField{
						Type:      "TextField",
						Name:      "password",
						Label:     "Password",
						InputType: "password",
						Required:  true,
					},
					&Checkbox{
						Type:          "Checkbox",
						Name:          "email_verified",
						Label:         "Email Verified",
						CheckboxLabel: "Mark email as verified",
					},
				},
				OnSuccess: Refresh(),
			},
		},
	}
}

// Dashboard builds the main dashboard page.
func Dashboard(api string) *Page {
	return &Page{
		Type:        "Page",
		Title:       "Admin Dashboard",
		Description: "Overview of your application",
		Actions: []Node{
			&Button{
				Type:    "Button",
				Label:   "Add User",
				Variant: "primary",
				Icon:    "+",
				OnClick: OpenModal(addUserModal(api)),
			},
		},
		Children: []Node{
			&StatsGrid{
				Type:     "StatsGrid",
				Columns:  4,
				Endpoint: api + "/stats",
				Items: []StatItem{
					{
						Label:   "Total Users",
						Key:     "total_users",
						Icon:    "users",
						OnClick: Navigate("/ui/users"),
					},
					{Label: "Verified", Key: "verified_users", Icon: "check"},
					{Label: "Unverified", Key: "unverified_users", Icon: "clock"},
					{Label: "2FA Enabled", Key: "two_factor_enabled", Icon: "shield"},
				},
			},
			&Card{
				Type:      "Card",
				Title:     "Recent Users",
				Subtitle:  "Latest registered users",
				ClassName: "mt-6",
				Children: []Node{
					&DataTable{
						Type:       "DataTable",
						Endpoint:   api + "/users",
						Pagination: false,
						Searchable: false,
						Columns: []TableColumn{
							{Key: "email", Label: "Email"},
							{Key: "email_verified", Label: "Verified", Kind: "boolean"},
							{Key: "created_at", Label: "Created", Kind: "datetime"},
						},
						RowActions: []Node{
							&Button{
								Type:    "Button",
								Label:   "View",
								Variant: "ghost",
								Size:    "sm",
								OnClick: Navigate("/ui/users/{email}"),
							},
						},
						EmptyMessage: "No users yet",
					},
				},
				Footer: []Node{
					&Link{Type: "Link", Label: "View all users", Href: "/ui/users"},
				},
			},
			&Card{
				Type:      "Card",
				Title:     "Quick Actions",
				ClassName: "mt-6",
				Children: []Node{
					&Row{
						Type: "Row",
						Gap:  12,
						Children: []Node{
							&Button{
								Type:    "Button",
								Label:   "Export Users",
								Variant: "outline",
								OnClick: Call("GET", api+"/users"),
							},
							&Button{
								Type:    "Button",
								Label:   "Manage Users",
								Variant: "outline",
								OnClick: Navigate("/ui/users"),
							},
						},
					},
				},
			},
		},
	}
}

// UsersList builds the users list page.
func UsersList(api string) *Page {
	return &Page{
		Type:        "Page",
		Title:       "Users",
		Description: "Manage user accounts",
		Actions: []Node{
			&Button{
				Type:    "Button",
				Label:   "Add User",
				Variant: "primary",
				Icon:    "+",
				OnClick: OpenModal(addUserModal(api)),
			},
		},
		Children: []Node{
			&Card{
				Type: "Card",
				Children: []Node{
					&DataTable{
						Type:       "DataTable",
						Endpoint:   api + "/users",
						Pagination: true,
						PageSize:   20,
						Searchable: true,
						Sortable:   true,
						Columns: []TableColumn{
							{Key: "email", Label: "Email", Sortable: true},
							{Key: "email_verified", Label: "Verified", Kind: "boolean", Sortable: true},
							{Key: "two_factor_enabled", Label: "2FA", Kind: "boolean"},
							{Key: "created_at", Label: "Created", Kind: "datetime", Sortable: true},
							{Key: "updated_at", Label: "Updated", Kind: "datetime"},
						},
						RowActions: []Node{
							&Button{
								Type:    "Button",
								Label:   "Edit",
								Variant: "ghost",
								Size:    "sm",
								OnClick: Navigate("/ui/users/{email}"),
							},
							&Button{
								Type:    "Button",
								Label:   "Delete",
								Variant: "danger",
								Size:    "sm",
								OnClick: &Action{
									Type:      "api",
									Method:    "DELETE",
									Endpoint:  api + "/users/{email}",
									Confirm:   "Are you sure you want to delete this user?",
									OnSuccess: Refresh(),
								},
							},
						},
						EmptyMessage: "No users found",
					},
				},
			},
		},
	}
}

// UserEdit builds the edit page for one user. The caller has already
// checked that email is well formed.
func UserEdit(api, email string) *Page {
	userEndpoint := api + "/users/" + email

	return &Page{
		Type:        "Page",
		Title:       "Edit User",
		Description: email,
		Actions: []Node{
			&Button{
				Type:    "Button",
				Label:   "Back to Users",
				Variant: "outline",
				OnClick: Navigate("/ui/users"),
			},
		},
		Children: []Node{
			&Card{
				Type:  "Card",
				Title: "User Details",
				Children: []Node{
					&Form{
						Type:       "Form",
						Endpoint:   userEndpoint,
						Method:     "PUT",
						Source:     userEndpoint,
						SubmitText: "Save Changes",
						Fields: []Node{
							&TextField{
								Type:        "TextField",
								Name:        "email",
								Label:       "Email",
								InputType:   "email",
								ReadOnly:    true,
								Placeholder: email,
							},
							&Checkbox{
								Type:          "Checkbox",
								Name:          "email_verified",
								Label:         "Email Status",
								CheckboxLabel: "Email verified",
							},
							&Checkbox{
								Type:          "Checkbox",
								Name:          "two_factor_enabled",
								Label:         "Two-Factor Auth",
								CheckboxLabel: "2FA enabled",
							},
						},
						OnSuccess: Navigate("/ui/users"),
					},
				},
			},
			&Card{
				Type:      "Card",
				Title:     "Metadata",
				ClassName: "mt-6",
				Children: []Node{
					&Row{
						Type: "Row",
						Gap:  24,
						Children: []Node{
							&Column{
								Type: "Column",
								Children: []Node{
									&Text{Type: "Text", Content: "Created", Variant: "small"},
									&Text{Type: "Text", Bind: "created_at", Variant: "body"},
								},
							},
							&Column{
								Type: "Column",
								Children: []Node{
									&Text{Type: "Text", Content: "Last Updated", Variant: "small"},
									&Text{Type: "Text", Bind: "updated_at", Variant: "body"},
								},
							},
						},
					},
				},
			},
			&Card{
				Type:      "Card",
				Title:     "Danger Zone",
				ClassName: "mt-6",
				Children: []Node{
					&Alert{
						Type:    "Alert",
						Variant: "warning",
						Message: "Deleting a user is permanent and cannot be undone.",
					},
					&Button{
						Type:      "Button",
						Label:     "Delete User",
						Variant:   "danger",
						ClassName: "mt-4",
						OnClick: &Action{
							Type:      "api",
							Method:    "DELETE",
							Endpoint:  userEndpoint,
							Confirm:   "Are you sure you want to delete " + email + "?",
							OnSuccess: Navigate("/ui/users"),
						},
					},
				},
			},
		},
	}
}
