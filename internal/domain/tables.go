package domain

var Tables = []interface{}{
	&LoginEvent{},
	&Product{},
	&OutflowRecord{},
}
