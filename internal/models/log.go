package models

type LoginRecord struct {
	User    string `json:"user" yaml:"user"`
	Time    string `json:"time" yaml:"time"`
	Success bool   `json:"success" yaml:"success"`
}

type IPLogRecord struct {
	User string `json:"user" yaml:"user"`
	IP   string `json:"ip" yaml:"ip"`
	Time string `json:"time" yaml:"time"`
}

type FailedLogin struct {
	User   string `json:"user" yaml:"user"`
	Time   string `json:"time" yaml:"time"`
	Reason string `json:"reason" yaml:"reason"`
}

type ActivityRecord struct {
	User   string `json:"user" yaml:"user"`
	Page   string `json:"page" yaml:"page"`
	Action string `json:"action" yaml:"action"`
	Time   string `json:"time" yaml:"time"`
}

// LogBook groups the read-only log lists shown on the logs page.
type LogBook struct {
	LoginHistory []LoginRecord    `json:"login_history" yaml:"login_history"`
	IPLogs       []IPLogRecord    `json:"ip_logs" yaml:"ip_logs"`
	FailedLogins []FailedLogin    `json:"failed_logins" yaml:"failed_logins"`
	Activity     []ActivityRecord `json:"activity" yaml:"activity"`
}

// Clone returns a LogBook whose slices do not alias the receiver's.
func (b LogBook) Clone() LogBook {
	return LogBook{
		LoginHistory: append([]LoginRecord(nil), b.LoginHistory...),
		IPLogs:       append([]IPLogRecord(nil), b.IPLogs...),
		FailedLogins: append([]FailedLogin(nil), b.FailedLogins...),
		Activity:     append([]ActivityRecord(nil), b.Activity...),
	}
}

type SummaryCard struct {
	Title string `json:"title" yaml:"title"`
	Value string `json:"value" yaml:"value"`
}
