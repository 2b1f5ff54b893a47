package gov

const Version = "0.1.0"
