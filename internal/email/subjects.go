package email

const subjectReportReady = "Your Operations Assessment Report Is Ready"
