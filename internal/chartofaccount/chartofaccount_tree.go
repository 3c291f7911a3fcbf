package chartofaccount

func group(code, name string, t AccountType, children ...SeedNode) SeedNode {
	return SeedNode{Code: code, Name: name, Type: t, IsGroup: true, Children: children}
}

func leaf(code, name string, t AccountType) SeedNode {
	return SeedNode{Code: code, Name: name, Type: t}
}

// DefaultTree is the standard chart used by a new company. Codes grow two
// digits per level below the single digit roots.
func DefaultTree() []SeedNode {
	return []SeedNode{
		group("1", "Assets", TypeAsset,
			group("11", "Current Assets", TypeAsset,
				group("1101", "Cash and Bank", TypeAsset,
					leaf("110101", "Cash in Hand", TypeAsset),
					leaf("110102", "Bank Accounts", TypeAsset),
				),
				group("1102", "Receivables", TypeAsset,
					leaf("110201", "Employee Advances", TypeAsset),
					leaf("110202", "Employee Loans", TypeAsset),
				),
			),
			group("12", "Non-Current Assets", TypeAsset,
				group("1201", "Property and Equipment", TypeAsset,
					leaf("120101", "Office Equipment", TypeAsset),
					leaf("120102", "Furniture and Fixtures", TypeAsset),
				),
			),
		),
		group("2", "Liabilities", TypeLiability,
			group("21", "Current Liabilities", TypeLiability,
				group("2101", "Payroll Payables", TypeLiability,
					leaf("210101", "Salaries Payable", TypeLiability),
					leaf("210102", "Bonus Payable", TypeLiability),
				),
				group("2102", "Statutory Payables", TypeLiability,
					leaf("210201", "Provident Fund Payable", TypeLiability),
					leaf("210202", "EOBI Payable", TypeLiability),
					leaf("210203", "Income Tax Payable", TypeLiability),
				),
			),
			group("22", "Non-Current Liabilities", TypeLiability,
				leaf("2201", "Gratuity Payable", TypeLiability),
			),
		),
		group("3", "Equity", TypeEquity,
			leaf("31", "Share Capital", TypeEquity),
			leaf("32", "Retained Earnings", TypeEquity),
		),
		group("4", "Income", TypeIncome,
			group("41", "Operating Income", TypeIncome,
				leaf("4101", "Service Revenue", TypeIncome),
			),
			group("42", "Other Income", TypeIncome,
				leaf("4201", "Recovered Deductions", TypeIncome),
			),
		),
		group("5", "Expenses", TypeExpense,
			group("51", "Operating Expenses", TypeExpense,
				group("5101", "Staff Costs", TypeExpense,
					leaf("510101", "Salaries and Wages", TypeExpense),
					leaf("510102", "Bonuses", TypeExpense),
					leaf("510103", "Allowances", TypeExpense),
				),
				group("5102", "Employer Contributions", TypeExpense,
					leaf("510201", "Provident Fund Contribution", TypeExpense),
					leaf("510202", "EOBI Contribution", TypeExpense),
				),
			),
			group("52", "Administrative Expenses", TypeExpense,
				leaf("5201", "Rent", TypeExpense),
				leaf("5202", "Utilities", TypeExpense),
			),
		),
	}
}
